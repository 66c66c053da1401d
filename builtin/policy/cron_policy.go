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
// Package policy provides route policies and transaction policies that can be
// attached to route definitions.
//
// Package policy 提供可以挂载到路由定义的路由策略和事务策略。
package policy

import (
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rulego/routedsl/api/types"
)

const CronScheduledRoutePolicyName = "cronScheduledRoutePolicy"

var (
	_ types.RoutePolicy = (*CronScheduledRoutePolicy)(nil)
	_ types.Validator   = (*CronScheduledRoutePolicy)(nil)
)

// parser accepts the same expressions as a scheduler created with cron.WithSeconds(),
// for example "0 0 8 * * *", plus descriptors such as "@daily".
var parser = cron.NewParser(cron.Second | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor)

// CronScheduledRoutePolicy starts, stops, suspends and resumes a route on cron
// schedules. Empty expressions are not scheduled. The policy only describes the
// schedules; the runtime owns the timers.
// CronScheduledRoutePolicy 基于cron表达式控制路由启动、停止、挂起和恢复的路由策略
type CronScheduledRoutePolicy struct {
	// RouteStartTime 路由启动cron表达式，例如：0 0 8 * * *
	RouteStartTime string `json:"routeStartTime,omitempty"`
	// RouteStopTime 路由停止cron表达式
	RouteStopTime string `json:"routeStopTime,omitempty"`
	// RouteSuspendTime 路由挂起cron表达式
	RouteSuspendTime string `json:"routeSuspendTime,omitempty"`
	// RouteResumeTime 路由恢复cron表达式
	RouteResumeTime string `json:"routeResumeTime,omitempty"`
}

func (p *CronScheduledRoutePolicy) RoutePolicyName() string {
	return CronScheduledRoutePolicyName
}

// Validate parses every configured expression.
func (p *CronScheduledRoutePolicy) Validate() error {
	_, err := p.Schedules()
	return err
}

// Schedules parses the configured expressions, keyed by action: start, stop, suspend
// and resume.
func (p *CronScheduledRoutePolicy) Schedules() (map[string]cron.Schedule, error) {
	result := make(map[string]cron.Schedule)
	for _, item := range []struct {
		action string
		spec   string
	}{
		{"start", p.RouteStartTime},
		{"stop", p.RouteStopTime},
		{"suspend", p.RouteSuspendTime},
		{"resume", p.RouteResumeTime},
	} {
		if item.spec == "" {
			continue
		}
		schedule, err := parser.Parse(item.spec)
		if err != nil {
			return nil, fmt.Errorf("%w. %s=%s: %v", types.ErrInvalidRoutePolicy, item.action, item.spec, err)
		}
		result[item.action] = schedule
	}
	if len(result) == 0 {
		return nil, fmt.Errorf("%w. %s has no schedule", types.ErrInvalidRoutePolicy, CronScheduledRoutePolicyName)
	}
	return result, nil
}

// Next returns the next activation of action after t, false when the action is not
// scheduled or the policy is invalid.
func (p *CronScheduledRoutePolicy) Next(action string, t time.Time) (time.Time, bool) {
	schedules, err := p.Schedules()
	if err != nil {
		return time.Time{}, false
	}
	schedule, ok := schedules[action]
	if !ok {
		return time.Time{}, false
	}
	return schedule.Next(t), true
}
