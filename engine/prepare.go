/*
 * Copyright 2025 The RuleGo Authors.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package engine

import (
	"fmt"
	"sort"

	"github.com/rulego/routedsl/api/types"
	"github.com/rulego/routedsl/builtin/language"
	"github.com/rulego/routedsl/model"
	"github.com/rulego/routedsl/utils/pattern"
	"github.com/rulego/routedsl/utils/str"
)

// PrepareContext is shared by the passes preparing one route.
// PrepareContext 路由预处理上下文
type PrepareContext struct {
	Config types.Config
	Route  *model.RouteDefinition
	// Template is set when a route template is prepared before its outputs are
	// shared with materialized routes. Only structural passes run.
	Template bool
	// Abstracts are the abstract top level outputs, such as intercepts.
	Abstracts []model.Definition
	// Lower are the regular top level outputs.
	Lower []model.Definition
}

// Preparer is one pass of route preparation. Passes run by ascending Order.
// Preparer 路由预处理步骤，按Order从小到大执行
type Preparer interface {
	// Order returns the execution order of this pass. Lower values run first.
	Order() int
	Name() string
	Prepare(ctx *PrepareContext) error
}

// BuiltinPreparers are the passes run by PrepareRoute.
//
//   - sanity: the route has an input and outputs
//   - topLevel: top level only nodes sit directly under the route
//   - split: abstract and regular outputs are separated
//   - intercepts: guards are rewritten and intercepts moved to the head
//   - transacted: regular outputs move into the transacted node
//   - expressions: deferred clauses are resolved
//   - languages: expression syntax is checked, when enabled
//   - references: policy, error type and error handler references are resolved
//   - routePolicies: route policies are validated
//   - ids: missing ids are generated
var BuiltinPreparers = []Preparer{
	&sanityPreparer{},
	&topLevelPreparer{},
	&splitPreparer{},
	&interceptPreparer{},
	&transactedPreparer{},
	&expressionPreparer{},
	&languagePreparer{},
	&referencePreparer{},
	&routePolicyPreparer{},
	&idPreparer{},
}

// PrepareRoute runs the builtin passes over route and marks it prepared. A prepared
// route is left untouched.
//
// When the route shares outputs with a route template, the template is prepared
// first and the route picks up the rewritten outputs, so the shared nodes are
// rewritten once and stay owned by the template.
// PrepareRoute 预处理路由，已预处理的路由直接返回
func PrepareRoute(config types.Config, route *model.RouteDefinition) error {
	if route.IsPrepared() {
		return nil
	}
	if template := route.SharedTemplate(); template != nil {
		if err := prepareTemplate(config, template); err != nil {
			return err
		}
		route.SyncTemplateOutputs()
	}
	if err := runPreparers(&PrepareContext{Config: config, Route: route}); err != nil {
		return err
	}
	route.MarkPrepared()
	return nil
}

// PrepareRoutes prepares every route, stopping at the first error.
func PrepareRoutes(config types.Config, routes ...*model.RouteDefinition) error {
	for _, route := range routes {
		if err := PrepareRoute(config, route); err != nil {
			return err
		}
	}
	return nil
}

// prepareTemplate runs the structural passes over a template so routes sharing its
// outputs find them already rewritten.
func prepareTemplate(config types.Config, template *model.RouteTemplateDefinition) error {
	route := &template.RouteDefinition
	if route.IsPrepared() {
		return nil
	}
	if err := runPreparers(&PrepareContext{Config: config, Route: route, Template: true}); err != nil {
		return err
	}
	route.MarkPrepared()
	return nil
}

func runPreparers(ctx *PrepareContext) error {
	if ctx.Config.Logger == nil {
		ctx.Config.Logger = types.DefaultLogger()
	}
	preparers := append([]Preparer(nil), BuiltinPreparers...)
	sort.SliceStable(preparers, func(i, j int) bool {
		return preparers[i].Order() < preparers[j].Order()
	})
	for _, p := range preparers {
		if err := p.Prepare(ctx); err != nil {
			return fmt.Errorf("prepare route=%s: %w", routeName(ctx.Route), err)
		}
	}
	return nil
}

func routeName(route *model.RouteDefinition) string {
	if route.GetId() != "" {
		return route.GetId()
	}
	return route.GetEndpointUri()
}

type sanityPreparer struct {
}

func (p *sanityPreparer) Order() int {
	return 100
}

func (p *sanityPreparer) Name() string {
	return "sanity"
}

func (p *sanityPreparer) Prepare(ctx *PrepareContext) error {
	if ctx.Route.GetInput() == nil || ctx.Route.GetEndpointUri() == "" {
		return types.ErrRouteNoInput
	}
	if len(ctx.Route.Outputs()) == 0 {
		return types.ErrRouteNoOutput
	}
	return nil
}

type topLevelPreparer struct {
}

func (p *topLevelPreparer) Order() int {
	return 200
}

func (p *topLevelPreparer) Name() string {
	return "topLevel"
}

func (p *topLevelPreparer) Prepare(ctx *PrepareContext) error {
	var err error
	for _, out := range ctx.Route.Outputs() {
		model.Walk(out, func(d model.Definition) bool {
			if err == nil && d.IsTopLevelOnly() {
				err = fmt.Errorf("%w. Try moving %s to the top of route", types.ErrTopLevelOnly, model.String(d))
			}
			return err == nil
		})
		if err != nil {
			return err
		}
	}
	return nil
}

type splitPreparer struct {
}

func (p *splitPreparer) Order() int {
	return 300
}

func (p *splitPreparer) Name() string {
	return "split"
}

func (p *splitPreparer) Prepare(ctx *PrepareContext) error {
	ctx.Abstracts, ctx.Lower = splitOutputs(ctx.Route.Outputs())
	return nil
}

func splitOutputs(outputs []model.Definition) (abstracts, lower []model.Definition) {
	for _, out := range outputs {
		if out.IsAbstract() {
			abstracts = append(abstracts, out)
		} else {
			lower = append(lower, out)
		}
	}
	return abstracts, lower
}

type interceptPreparer struct {
}

func (p *interceptPreparer) Order() int {
	return 400
}

func (p *interceptPreparer) Name() string {
	return "intercepts"
}

// Prepare rewrites the guard of every intercept and moves the intercepts to the head
// of the route. An interceptFrom whose pattern does not match the route input is
// removed from the route.
func (p *interceptPreparer) Prepare(ctx *PrepareContext) error {
	route := ctx.Route
	var interceptors []model.Definition
	for _, out := range ctx.Abstracts {
		interceptor, ok := out.(model.Interceptor)
		if !ok {
			continue
		}
		if from, ok := out.(*model.InterceptFromDefinition); ok && !ctx.Template && from.Uri != "" &&
			!pattern.Match(route.GetEndpointUri(), from.Uri) {
			ctx.Config.Logger.Printf("route=%s skips %s, input %s does not match", routeName(route), model.String(from), route.GetEndpointUri())
			route.RemoveOutput(out)
			continue
		}
		if err := interceptor.AfterPropertiesSet(); err != nil {
			return err
		}
		interceptors = append(interceptors, out)
	}
	if len(interceptors) == 0 {
		ctx.Abstracts, ctx.Lower = splitOutputs(route.Outputs())
		return nil
	}
	ordered := append([]model.Definition(nil), interceptors...)
	for _, out := range route.Outputs() {
		if _, ok := out.(model.Interceptor); !ok {
			ordered = append(ordered, out)
		}
	}
	if !sameOutputs(route.Outputs(), ordered) {
		if err := route.SetOutputs(ordered); err != nil {
			return err
		}
	}
	ctx.Abstracts, ctx.Lower = splitOutputs(route.Outputs())
	return nil
}

func sameOutputs(a, b []model.Definition) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

type transactedPreparer struct {
}

func (p *transactedPreparer) Order() int {
	return 500
}

func (p *transactedPreparer) Name() string {
	return "transacted"
}

// Prepare moves the regular outputs of the route into its transacted node. A route
// can only declare one, and can not add outputs to a transacted node it shares with
// its template.
func (p *transactedPreparer) Prepare(ctx *PrepareContext) error {
	transacted := model.FilterTypeInOutputs[*model.TransactedDefinition](ctx.Route.Outputs())
	if len(transacted) == 0 {
		return nil
	}
	if len(transacted) > 1 {
		return types.ErrMultipleTransacted
	}
	tx := transacted[0]
	if len(ctx.Lower) == 0 {
		return nil
	}
	if tx.Parent() != model.Container(ctx.Route) {
		return fmt.Errorf("%w. %s can not wrap %s", types.ErrSharedNode, model.String(tx), model.String(ctx.Lower[0]))
	}
	for _, out := range ctx.Lower {
		if err := tx.AddOutput(out); err != nil {
			return err
		}
	}
	ctx.Config.Logger.Printf("route=%s moved %d outputs into %s", routeName(ctx.Route), len(ctx.Lower), model.String(tx))
	ctx.Abstracts, ctx.Lower = splitOutputs(ctx.Route.Outputs())
	return nil
}

type expressionPreparer struct {
}

func (p *expressionPreparer) Order() int {
	return 600
}

func (p *expressionPreparer) Name() string {
	return "expressions"
}

func (p *expressionPreparer) Prepare(ctx *PrepareContext) error {
	model.Walk(ctx.Route, func(d model.Definition) bool {
		switch n := d.(type) {
		case model.ExpressionNode:
			n.PrepareExpression()
		case *model.CatchDefinition:
			n.PrepareOnWhen()
		}
		return true
	})
	return nil
}

type languagePreparer struct {
}

func (p *languagePreparer) Order() int {
	return 700
}

func (p *languagePreparer) Name() string {
	return "languages"
}

// Prepare checks the syntax of every textual expression. Expressions backed by an
// instance are skipped.
func (p *languagePreparer) Prepare(ctx *PrepareContext) error {
	if ctx.Template || !ctx.Config.ValidateExpressions {
		return nil
	}
	languages := ctx.Config.Languages
	if languages == nil {
		languages = language.Builtins
	}
	var err error
	validate := func(d model.Definition, e *model.ExpressionDefinition, predicate bool) {
		if err != nil || e == nil || e.Language == "" || e.GetExpressionValue() != nil {
			return
		}
		if verr := language.Validate(languages, e.Language, e.Text, predicate); verr != nil {
			err = fmt.Errorf("%s: %w", model.String(d), verr)
		}
	}
	model.Walk(ctx.Route, func(d model.Definition) bool {
		switch n := d.(type) {
		case model.ExpressionNode:
			validate(d, n.GetExpression(), isPredicateNode(d))
		case *model.CatchDefinition:
			validate(d, n.GetOnWhen(), true)
		}
		return err == nil
	})
	return err
}

// isPredicateNode reports whether the expression of d must evaluate to a boolean.
func isPredicateNode(d model.Definition) bool {
	switch n := d.(type) {
	case *model.FilterDefinition, *model.WhenDefinition, *model.ValidateDefinition:
		return true
	case *model.LoopDefinition:
		return n.Mode() == model.LoopWhile
	}
	return false
}

type referencePreparer struct {
}

func (p *referencePreparer) Order() int {
	return 800
}

func (p *referencePreparer) Name() string {
	return "references"
}

// Prepare resolves the policy references, catch error types and the error handler
// reference of the route.
func (p *referencePreparer) Prepare(ctx *PrepareContext) error {
	if ctx.Template {
		return nil
	}
	route := ctx.Route
	if route.ErrorHandlerRef != "" && route.ErrorHandlerFactory == nil {
		bean, err := lookup(ctx.Config.BeanRegistry, route.ErrorHandlerRef)
		if err != nil {
			return err
		}
		if _, ok := bean.(types.ErrorHandlerFactory); !ok {
			return fmt.Errorf("%w. errorHandlerRef=%s", types.ErrUnexpectedBeanType, route.ErrorHandlerRef)
		}
	}
	var err error
	model.Walk(route, func(d model.Definition) bool {
		switch n := d.(type) {
		case *model.PolicyDefinition:
			if n.GetPolicy() == nil {
				_, err = n.ResolvePolicy(ctx.Config.BeanRegistry)
			}
		case *model.TransactedDefinition:
			if n.GetPolicy() == nil && n.GetRef() != "" {
				_, err = n.ResolvePolicy(ctx.Config.BeanRegistry)
			}
		case *model.CatchDefinition:
			if ctx.Config.ErrorTypes != nil {
				err = n.ResolveErrorTypes(ctx.Config.ErrorTypes)
			}
		case *model.ThrowExceptionDefinition:
			if n.GetError() == nil && ctx.Config.ErrorTypes != nil {
				_, err = ctx.Config.ErrorTypes.Resolve(n.ExceptionType)
			}
		}
		if err != nil {
			err = fmt.Errorf("%s: %w", model.String(d), err)
		}
		return err == nil
	})
	return err
}

func lookup(registry types.BeanRegistry, ref string) (interface{}, error) {
	if registry != nil {
		if bean, ok := registry.Lookup(ref); ok {
			return bean, nil
		}
	}
	return nil, fmt.Errorf("%w. ref=%s", types.ErrBeanNotFound, ref)
}

type routePolicyPreparer struct {
}

func (p *routePolicyPreparer) Order() int {
	return 900
}

func (p *routePolicyPreparer) Name() string {
	return "routePolicies"
}

// Prepare validates the route policies, including the ones referenced by
// RoutePolicyRef.
func (p *routePolicyPreparer) Prepare(ctx *PrepareContext) error {
	if ctx.Template {
		return nil
	}
	policies := append([]types.RoutePolicy(nil), ctx.Route.RoutePolicies...)
	for _, ref := range str.SplitAndTrim(ctx.Route.RoutePolicyRef, ",") {
		bean, err := lookup(ctx.Config.BeanRegistry, ref)
		if err != nil {
			return err
		}
		policy, ok := bean.(types.RoutePolicy)
		if !ok {
			return fmt.Errorf("%w. routePolicyRef=%s", types.ErrUnexpectedBeanType, ref)
		}
		policies = append(policies, policy)
	}
	for _, policy := range policies {
		if v, ok := policy.(types.Validator); ok {
			if err := v.Validate(); err != nil {
				return err
			}
		}
	}
	return nil
}

type idPreparer struct {
}

func (p *idPreparer) Order() int {
	return 1000
}

func (p *idPreparer) Name() string {
	return "ids"
}

func (p *idPreparer) Prepare(ctx *PrepareContext) error {
	if ctx.Template {
		return nil
	}
	factory := ctx.Config.NodeIdFactory
	if factory == nil {
		factory = defaultNodeIdFactory
	}
	return ForceAssignIds(ctx.Route, factory)
}

var defaultNodeIdFactory = NewDefaultNodeIdFactory()
