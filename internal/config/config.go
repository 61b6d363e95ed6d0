//
// FrankyGo - UCI chess engine in GO for learning purposes
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//

// Package config exposes the process-wide settings tree (logging, search
// and evaluation knobs), populated from compiled-in defaults and then
// overlaid with a toml config file on Setup.
package config

import (
	"fmt"
	"log"
	"reflect"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/frankkopp/corvid/internal/util"
)

// globally available config values.
var (
	// ConfFile hold the path to the used config file (relative to working directory)
	ConfFile = "./config.toml"

	// LogLevel defines the general log level - can be overwritten by cmd line options or config file
	LogLevel = 5

	// SearchLogLevel defines the search log level - can be overwritten by cmd line options or config file
	SearchLogLevel = 5

	// TestLogLevel defines the test log level
	TestLogLevel = 5

	// Settings is the global configuration read in from file
	Settings conf

	initialized = false
)

type conf struct {
	Log    logConfiguration
	Search searchConfiguration
	Eval   evalConfiguration
}

// Setup loads the toml config file (falling back to the compiled-in
// defaults if it can't be found or parsed) and then runs every section's
// post-load setup hook. Idempotent - later calls are no-ops.
func Setup() {
	if initialized {
		return
	}

	if path, err := util.ResolveFile(ConfFile); err == nil {
		if _, err := toml.DecodeFile(path, &Settings); err != nil {
			log.Println("config file found but could not be parsed, using defaults:", err)
		}
	} else {
		log.Println("no config file found, using defaults:", err)
	}

	setupLogLvl()
	setupSearch()
	setupEval()
	initialized = true
}

// String dumps every field of Search and Eval config via reflection, one
// line per field, for diagnostic logging at startup.
func (settings *conf) String() string {
	var b strings.Builder
	b.WriteString("Search Config:\n")
	dumpFields(&b, reflect.ValueOf(&settings.Search).Elem())
	b.WriteString("\nEvaluation Config:\n")
	dumpFields(&b, reflect.ValueOf(&settings.Eval).Elem())
	return b.String()
}

func dumpFields(b *strings.Builder, v reflect.Value) {
	t := v.Type()
	for i := 0; i < v.NumField(); i++ {
		f := v.Field(i)
		fmt.Fprintf(b, "%-2d: %-22s %-6s = %v\n", i, t.Field(i).Name, f.Type(), f.Interface())
	}
}
