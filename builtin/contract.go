// Copyright (c) 2018 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package builtin

import (
	"fmt"
	"sort"

	"github.com/vechain/stakeledger/xenv"
)

type contract struct {
	name    string
	methods map[string]*NativeMethod
}

func newContract(name string) *contract {
	return &contract{
		name:    name,
		methods: make(map[string]*NativeMethod),
	}
}

func (c *contract) Name() string {
	return c.name
}

func (c *contract) impl(name string, payable, view bool, run func(env *xenv.Environment) (any, error)) {
	if _, ok := c.methods[name]; ok {
		panic(fmt.Errorf("duplicated native method '%s' of '%s'", name, c.name))
	}
	c.methods[name] = &NativeMethod{
		Name:    name,
		Payable: payable,
		View:    view,
		run:     run,
	}
}

// FindMethod returns the native method by name.
func (c *contract) FindMethod(name string) (*NativeMethod, bool) {
	m, ok := c.methods[name]
	return m, ok
}

// Methods returns all method names in alphabetical order.
func (c *contract) Methods() []string {
	names := make([]string, 0, len(c.methods))
	for name := range c.methods {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
