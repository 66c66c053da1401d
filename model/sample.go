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
package model

import (
	"fmt"
	"time"

	"github.com/rulego/routedsl/api/types"
)

// DefaultSamplePeriod is used when neither a period nor a frequency is set.
const DefaultSamplePeriod = time.Second

// SampleDefinition lets one exchange through per period, or one out of every
// MessageFrequency exchanges. Setting one clears the other.
// SampleDefinition 采样节点，按时间周期或消息频率放行
type SampleDefinition struct {
	noOutputs
	period    time.Duration
	frequency int64
}

// NewSample creates a period based sampler.
func NewSample(period time.Duration) *SampleDefinition {
	d := &SampleDefinition{}
	d.init(d)
	d.SamplePeriod(period)
	return d
}

// NewSampleFrequency creates a frequency based sampler.
func NewSampleFrequency(frequency int64) *SampleDefinition {
	d := NewSample(0)
	d.SampleMessageFrequency(frequency)
	return d
}

func (d *SampleDefinition) ShortName() string {
	return types.NodeSample
}

func (d *SampleDefinition) Label() string {
	if d.frequency > 0 {
		return fmt.Sprintf("1 Exchange per %d messages received", d.frequency)
	}
	return fmt.Sprintf("1 Exchange per %d millis", d.GetSamplePeriod().Milliseconds())
}

func (d *SampleDefinition) New() Definition {
	return NewSample(0)
}

// SamplePeriod switches to period sampling.
func (d *SampleDefinition) SamplePeriod(period time.Duration) *SampleDefinition {
	d.period = period
	d.frequency = 0
	return d
}

// SampleMessageFrequency switches to frequency sampling.
func (d *SampleDefinition) SampleMessageFrequency(frequency int64) *SampleDefinition {
	d.frequency = frequency
	d.period = 0
	return d
}

// GetSamplePeriod returns the period, DefaultSamplePeriod when frequency sampling
// is not configured and no period was given.
func (d *SampleDefinition) GetSamplePeriod() time.Duration {
	if d.period <= 0 && d.frequency <= 0 {
		return DefaultSamplePeriod
	}
	return d.period
}

func (d *SampleDefinition) GetMessageFrequency() int64 {
	return d.frequency
}
