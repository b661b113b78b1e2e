// Package policyfile loads the role table from YAML.
//
// File layout:
//
//	roles:
//	  customer: [manage_own_profile, browse_catalog, place_order, view_own_orders]
//	  driver:   [view_all_orders, transition_order_status]
//	  manager:  [mutate_catalog, manage_users]
//
// A role may list "inherit" to take every action of another role first.
package policyfile

import (
	"errors"
	"fmt"
	"os"

	"pizzastore/internal/core/domain/model/identity"

	"gopkg.in/yaml.v3"
)

var (
	ErrNoRoles        = errors.New("policy file defines no roles")
	ErrInheritCycle   = errors.New("policy role inheritance forms a cycle")
	ErrUnknownInherit = errors.New("policy role inherits from an undefined role")
)

type roleConfig struct {
	Inherit string   `yaml:"inherit"`
	Actions []string `yaml:"actions"`
}

// UnmarshalYAML accepts either a bare action list or an inherit/actions map.
func (r *roleConfig) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.SequenceNode {
		return node.Decode(&r.Actions)
	}
	type plain roleConfig
	return node.Decode((*plain)(r))
}

type fileConfig struct {
	Roles map[string]roleConfig `yaml:"roles"`
}

// Load reads and parses the file at path.
func Load(path string) (identity.Policy, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return identity.Policy{}, err
	}
	return Parse(data)
}

func Parse(data []byte) (identity.Policy, error) {
	var cfg fileConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return identity.Policy{}, fmt.Errorf("parse policy: %w", err)
	}
	if len(cfg.Roles) == 0 {
		return identity.Policy{}, ErrNoRoles
	}

	grants := make(map[identity.Role][]identity.Action, len(cfg.Roles))
	for name := range cfg.Roles {
		role, err := identity.ParseRole(name)
		if err != nil {
			return identity.Policy{}, err
		}
		actions, err := resolve(cfg.Roles, name, map[string]bool{})
		if err != nil {
			return identity.Policy{}, err
		}
		grants[role] = actions
	}

	return identity.NewPolicy(grants)
}

func resolve(roles map[string]roleConfig, name string, visiting map[string]bool) ([]identity.Action, error) {
	if visiting[name] {
		return nil, fmt.Errorf("%w: %s", ErrInheritCycle, name)
	}
	visiting[name] = true
	defer delete(visiting, name)

	rc := roles[name]
	var actions []identity.Action
	if rc.Inherit != "" {
		if _, ok := roles[rc.Inherit]; !ok {
			return nil, fmt.Errorf("%w: %s inherits %s", ErrUnknownInherit, name, rc.Inherit)
		}
		inherited, err := resolve(roles, rc.Inherit, visiting)
		if err != nil {
			return nil, err
		}
		actions = append(actions, inherited...)
	}
	for _, a := range rc.Actions {
		actions = append(actions, identity.Action(a))
	}
	return actions, nil
}
