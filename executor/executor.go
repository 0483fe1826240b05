package executor

import (
	"context"
	"fmt"
	"os"
	"strings"

	"kalibot/config"
	"kalibot/model"
)

// sensitiveParams lists parameters whose values never appear in reported
// command lines or stored run history.
var sensitiveParams = []string{"cookie", "api_token"}

// Executor builds and runs tool invocations: argv construction, per-tool
// timeout, redaction of sensitive parameter values.
type Executor struct {
	cfg         *config.Config
	runner      Runner
	downloadDir string
}

// New creates an executor. Downloads and clones without an explicit
// destination land in a bot-owned directory under the data dir.
func New(cfg *config.Config) *Executor {
	dir := cfg.DataDir() + "/downloads"
	_ = os.MkdirAll(dir, 0o700)
	return &Executor{
		cfg:         cfg,
		downloadDir: dir,
	}
}

// Execute runs one tool with the given parameters. The returned result's
// Command field has sensitive values redacted; callers can show and store
// it as is.
func (e *Executor) Execute(ctx context.Context, tool string, rawParams map[string]any) (model.ExecutionResult, error) {
	p := params(rawParams)

	// Native operations never spawn a process.
	switch tool {
	case "read_file":
		return readFile(p)
	case "move_file":
		return moveFile(p)
	case "copy_file":
		return copyFile(p)
	}

	argv, err := e.buildArgv(tool, p)
	if err != nil {
		return model.ExecutionResult{Command: tool, Err: err.Error()}, err
	}

	res, err := e.runner.Run(ctx, argv, e.cfg.ToolTimeout(tool))
	res.Command = redact(res.Command, p)
	if res.Err != "" {
		res.Err = redact(res.Err, p)
	}
	return res, err
}

func (e *Executor) buildArgv(tool string, p params) ([]string, error) {
	switch tool {
	case "download":
		return buildDownload(p, e.downloadDir)
	case "git_clone":
		return buildGitClone(p, e.downloadDir)
	case "install_package":
		return buildInstallPackage(p)
	}
	build, ok := builders[tool]
	if !ok {
		return nil, fmt.Errorf("no command builder for tool %q", tool)
	}
	return build(p, e.cfg.Wordlist)
}

// redact replaces sensitive parameter values in a display string.
func redact(s string, p params) string {
	for _, key := range sensitiveParams {
		if v, ok := p[key].(string); ok && v != "" {
			s = strings.ReplaceAll(s, v, "***")
		}
	}
	return s
}
