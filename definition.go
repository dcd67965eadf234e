/*
Copyright 2024 Robert Terhaar <robbyt@robbyt.net>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package definite

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Definition is the external document shape for building a machine at
// runtime, useful for storing states and transitions outside the code and
// loading them from configuration:
//
//	{
//	    "allowed_transitions": {"start": ["end"], "end": null},
//	    "default_state": "start"
//	}
type Definition struct {
	AllowedTransitions Transitions `json:"allowed_transitions" yaml:"allowed_transitions"`
	DefaultState       string      `json:"default_state"       yaml:"default_state"`
}

// FromDefinition builds a machine named name from a definition document.
// Keys missing from the document are left empty, so an incomplete
// definition fails with ErrNoStatesDefined or ErrInvalidDefaultState, the
// same validation a machine built with New goes through.
func FromDefinition(name string, def Definition, opts ...Option) (*Machine, error) {
	opts = append([]Option{WithName(name)}, opts...)
	return New(def.AllowedTransitions, def.DefaultState, opts...)
}

// FromJSON builds a machine named name from a JSON definition document.
func FromJSON(name string, data []byte, opts ...Option) (*Machine, error) {
	var def Definition
	if err := json.Unmarshal(data, &def); err != nil {
		return nil, fmt.Errorf("unable to decode the definition for %q: %w", name, err)
	}
	return FromDefinition(name, def, opts...)
}

// FromYAML builds a machine named name from a YAML definition document.
func FromYAML(name string, data []byte, opts ...Option) (*Machine, error) {
	var def Definition
	if err := yaml.Unmarshal(data, &def); err != nil {
		return nil, fmt.Errorf("unable to decode the definition for %q: %w", name, err)
	}
	return FromDefinition(name, def, opts...)
}
