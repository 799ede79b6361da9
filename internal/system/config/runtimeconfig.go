/*
 * Copyright (c) 2026, Halcyon Project.
 *
 * Halcyon Project licenses this file to you under the Apache License,
 * Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing,
 * software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
 * KIND, either express or implied.  See the License for the
 * specific language governing permissions and limitations
 * under the License.
 */

package config

import "sync"

// HalcyonRuntime holds the runtime configuration for the Halcyon server.
type HalcyonRuntime struct {
	HalcyonHome string `yaml:"halcyon_home"`
	Config      Config `yaml:"config"`
}

var (
	runtimeConfig *HalcyonRuntime
	once          sync.Once
)

// InitializeHalcyonRuntime initializes the HalcyonRuntime configuration.
func InitializeHalcyonRuntime(halcyonHome string, config *Config) error {
	once.Do(func() {
		runtimeConfig = &HalcyonRuntime{
			HalcyonHome: halcyonHome,
			Config:      *config,
		}
	})

	return nil
}

// GetHalcyonRuntime returns the HalcyonRuntime configuration.
func GetHalcyonRuntime() *HalcyonRuntime {
	if runtimeConfig == nil {
		panic("HalcyonRuntime is not initialized")
	}
	return runtimeConfig
}

// ResetHalcyonRuntime resets the HalcyonRuntime.
// This should only be used in tests to reset the singleton state.
func ResetHalcyonRuntime() {
	runtimeConfig = nil
	once = sync.Once{}
}
