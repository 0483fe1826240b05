package executor

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"kalibot/model"
)

// System operations back the download/git_clone/install_package/file tools.
// Installers and downloads run as the bot's own user: a deployment that
// wants apt installs grants the user passwordless sudo for apt-get alone,
// and permission failures come back in stderr like any other result.

func buildDownload(p params, downloadDir string) ([]string, error) {
	url, err := p.requireStr("url")
	if err != nil {
		return nil, err
	}
	output := p.str("output", "")
	if output == "" {
		name := url[strings.LastIndexByte(url, '/')+1:]
		if name == "" {
			name = "downloaded_file"
		}
		output = filepath.Join(downloadDir, name)
	}
	return []string{"wget", "-O", output, url}, nil
}

func buildGitClone(p params, downloadDir string) ([]string, error) {
	repo, err := p.requireStr("repo")
	if err != nil {
		return nil, err
	}
	dest := p.str("dest", "")
	if dest == "" {
		name := strings.TrimSuffix(repo[strings.LastIndexByte(strings.TrimRight(repo, "/"), '/')+1:], ".git")
		dest = filepath.Join(downloadDir, name)
	}
	return []string{"git", "clone", repo, dest}, nil
}

var installArgv = map[string][]string{
	"apt":   {"apt-get", "install", "-y"},
	"pip":   {"pip", "install"},
	"pip3":  {"pip3", "install"},
	"gem":   {"gem", "install"},
	"cargo": {"cargo", "install"},
	"npm":   {"npm", "install", "-g"},
}

func buildInstallPackage(p params) ([]string, error) {
	pkg, err := p.requireStr("package")
	if err != nil {
		return nil, err
	}
	manager := p.str("manager", "apt")
	argv, ok := installArgv[manager]
	if !ok {
		return nil, fmt.Errorf("unsupported package manager %q", manager)
	}
	return append(append([]string{}, argv...), pkg), nil
}

// readFile returns up to maxLines lines of a text file as an execution
// result, with a truncation note when the file is longer.
func readFile(p params) (model.ExecutionResult, error) {
	path, err := p.requireStr("file")
	if err != nil {
		return model.ExecutionResult{}, err
	}
	maxLines := p.num("lines", 50)

	data, err := os.ReadFile(path)
	if err != nil {
		return model.ExecutionResult{Command: "read_file " + path, Err: err.Error()}, err
	}

	lines := strings.SplitAfter(string(data), "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	total := len(lines)

	out := strings.Join(lines, "")
	if total > maxLines {
		out = strings.Join(lines[:maxLines], "")
		out += fmt.Sprintf("\n... truncated, %d of %d lines shown\n", maxLines, total)
	}
	return model.ExecutionResult{
		Success: true,
		Command: "read_file " + path,
		Stdout:  out,
	}, nil
}

func moveFile(p params) (model.ExecutionResult, error) {
	source, err := p.requireStr("source")
	if err != nil {
		return model.ExecutionResult{}, err
	}
	dest, err := p.requireStr("dest")
	if err != nil {
		return model.ExecutionResult{}, err
	}
	command := fmt.Sprintf("move_file %s %s", source, dest)
	if err := os.Rename(source, dest); err != nil {
		return model.ExecutionResult{Command: command, Err: err.Error()}, err
	}
	return model.ExecutionResult{Success: true, Command: command, Stdout: "moved " + source + " to " + dest}, nil
}

func copyFile(p params) (model.ExecutionResult, error) {
	source, err := p.requireStr("source")
	if err != nil {
		return model.ExecutionResult{}, err
	}
	dest, err := p.requireStr("dest")
	if err != nil {
		return model.ExecutionResult{}, err
	}
	command := fmt.Sprintf("copy_file %s %s", source, dest)
	if err := copyPath(source, dest); err != nil {
		return model.ExecutionResult{Command: command, Err: err.Error()}, err
	}
	return model.ExecutionResult{Success: true, Command: command, Stdout: "copied " + source + " to " + dest}, nil
}

func copyPath(source, dest string) error {
	info, err := os.Stat(source)
	if err != nil {
		return err
	}
	if info.IsDir() {
		return copyDir(source, dest, info)
	}
	return copyOne(source, dest, info)
}

func copyDir(source, dest string, info os.FileInfo) error {
	if err := os.MkdirAll(dest, info.Mode()); err != nil {
		return err
	}
	entries, err := os.ReadDir(source)
	if err != nil {
		return err
	}
	for _, entry := range entries {
		src := filepath.Join(source, entry.Name())
		dst := filepath.Join(dest, entry.Name())
		if err := copyPath(src, dst); err != nil {
			return err
		}
	}
	return nil
}

func copyOne(source, dest string, info os.FileInfo) error {
	in, err := os.Open(source)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(dest, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode())
	if err != nil {
		return err
	}
	defer out.Close()

	_, err = io.Copy(out, in)
	return err
}
