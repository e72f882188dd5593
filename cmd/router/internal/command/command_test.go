// Copyright 2026 The Router Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package command_test

import (
	"bytes"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"

	"github.com/joshhayes-sheen-vt/router/cmd/router/internal/command"
	"github.com/joshhayes-sheen-vt/router/cmd/router/internal/view"
)

func TestNewCLI_WithHumanView(t *testing.T) {
	cli := command.NewCLI(view.ViewHuman, &bytes.Buffer{}, view.LogLevelSilent)
	assert.NotNil(t, cli.Viewer)
	assert.NotNil(t, cli.Stream)
	assert.IsType(t, &view.HumanView{}, cli.Viewer)
	assert.Equal(t, &bytes.Buffer{}, cli.Writer)
}

func TestNewCLI_WithJSONView(t *testing.T) {
	cli := command.NewCLI(view.ViewJSON, &bytes.Buffer{}, view.LogLevelSilent)
	assert.NotNil(t, cli.Viewer)
	assert.NotNil(t, cli.Stream)
	assert.IsType(t, &view.JSONView{}, cli.Viewer)
	assert.Equal(t, &bytes.Buffer{}, cli.Writer)
}

func TestNewCLI_WithYAMLView(t *testing.T) {
	cli := command.NewCLI(view.ViewYAML, &bytes.Buffer{}, view.LogLevelSilent)
	assert.NotNil(t, cli.Viewer)
	assert.IsType(t, &view.YAMLView{}, cli.Viewer)
}

func TestNewCLI_PipelineLoggerDiscardsByDefault(t *testing.T) {
	cli := command.NewCLI(view.ViewHuman, &bytes.Buffer{}, view.LogLevelSilent)
	assert.False(t, cli.Log.Enabled())
}

func newUsageCommand(buf *bytes.Buffer) *cobra.Command {
	cmd := &cobra.Command{Use: "test"}
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	return cmd
}

func TestExactArgsWithUsage_ExactMatch(t *testing.T) {
	fn := command.ExactArgsWithUsage(1)
	err := fn(newUsageCommand(&bytes.Buffer{}), []string{"a"})
	assert.NoError(t, err)
}

func TestExactArgsWithUsage_TooFew(t *testing.T) {
	buf := &bytes.Buffer{}
	fn := command.ExactArgsWithUsage(1)
	err := fn(newUsageCommand(buf), []string{})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "requires exactly 1 argument")
	assert.Contains(t, buf.String(), "Usage:")
}

func TestExactArgsWithUsage_TooMany(t *testing.T) {
	fn := command.ExactArgsWithUsage(2)
	err := fn(newUsageCommand(&bytes.Buffer{}), []string{"a", "b", "c"})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "requires exactly 2 arguments")
}

func TestMaxArgs_WithinLimit(t *testing.T) {
	fn := command.MaxArgs(2)
	err := fn(nil, []string{"a"})
	assert.NoError(t, err)
}

func TestMaxArgs_AtLimit(t *testing.T) {
	fn := command.MaxArgs(2)
	err := fn(nil, []string{"a", "b"})
	assert.NoError(t, err)
}

func TestMaxArgs_ExceedsLimit(t *testing.T) {
	fn := command.MaxArgs(2)
	err := fn(nil, []string{"a", "b", "c"})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "expected at most 2 arguments, got 3")
}
