// Copyright 2026 The Toolbelt Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"strings"
	"testing"
)

type embeddedParams struct {
	Verbose bool `flag:"verbose,v" desc:"debug logging"`
}

type testParams struct {
	JSONOutput
	embeddedParams
	Config    string   `flag:"config" desc:"configuration file"`
	Profile   string   `flag:"profile,p" default:"python" desc:"profile"`
	Width     int      `flag:"width" default:"100" desc:"table width"`
	Targets   []string `flag:"target" desc:"targets"`
	Untouched string
}

func TestFlagsFromParams(t *testing.T) {
	var params testParams
	flagSet := FlagsFromParams("config", &params)

	if params.Profile != "python" || params.Width != 100 {
		t.Errorf("defaults not applied: %+v", params)
	}

	err := flagSet.Parse([]string{
		"--json", "-v", "--config", "x.yaml", "-p", "yaml",
		"--width=80", "--target", "a,b", "--target", "c",
	})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if !params.OutputJSON || !params.Verbose {
		t.Errorf("bool flags not bound: json=%v verbose=%v", params.OutputJSON, params.Verbose)
	}
	if params.Config != "x.yaml" || params.Profile != "yaml" || params.Width != 80 {
		t.Errorf("params = %+v", params)
	}
	if strings.Join(params.Targets, ",") != "a,b,c" {
		t.Errorf("Targets = %v, want [a b c]", params.Targets)
	}
	if flagSet.Lookup("untouched") != nil {
		t.Error("field without flag tag was bound")
	}
}

func TestBindFlags_Errors(t *testing.T) {
	var notStruct string
	if err := BindFlags(&notStruct, FlagsFromParams("x", &struct{}{})); err == nil {
		t.Error("expected error for non-struct params")
	}

	var badDefault struct {
		Count int `flag:"count" default:"many"`
	}
	if err := BindFlags(&badDefault, FlagsFromParams("x", &struct{}{})); err == nil {
		t.Error("expected error for unparseable default")
	}

	var unsupported struct {
		Ratio float32 `flag:"ratio"`
	}
	if err := BindFlags(&unsupported, FlagsFromParams("x", &struct{}{})); err == nil {
		t.Error("expected error for unsupported field type")
	}
}

func TestFlagsFromParams_PanicsOnInvalid(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for non-pointer params")
		}
	}()
	FlagsFromParams("x", testParams{})
}
