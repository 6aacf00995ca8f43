//go:build mage

package main

import (
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"strings"
	"time"

	spin "github.com/tj/go-spin"
)

const pkgAPI = "github.com/diegobernardes/strata/internal/application/api"

// Mock generate the mocks.
func Mock() error {
	cmd := exec.Command("go", "generate", "./...")
	return cmd.Run()
}

// Test run all the tests with the race detector.
func Test() error {
	verbose := (os.Getenv("verbose") == "true")

	done := make(chan struct{})
	defer close(done)
	go spinner("testing", done)

	cmd := exec.Command("go", "test", "-failfast", "-race", "-cover", "-v", "./...")
	content, err := cmd.CombinedOutput()
	if err != nil {
		fmt.Println(string(content))
		return err
	}

	if verbose {
		fmt.Println(string(content))
	}
	return nil
}

// Build the binary with the version information.
func Build() error {
	done := make(chan struct{})
	defer close(done)
	go spinner("building", done)

	ldflags := []string{
		fmt.Sprintf("-X %s.Version=%s", pkgAPI, os.Getenv("VERSION")),
		fmt.Sprintf("-X %s.Commit=%s", pkgAPI, gitCommit()),
		fmt.Sprintf("-X %s.BuildTime=%s", pkgAPI, time.Now().UTC().Format(time.RFC3339)),
	}

	output := "strata"
	if runtime.GOOS == "windows" {
		output += ".exe"
	}

	cmd := exec.Command(
		"go", "build", "-ldflags", strings.Join(ldflags, " "), "-o", output, "./cmd/strata",
	)
	cmd.Stdout, cmd.Stderr = os.Stdout, os.Stderr
	return cmd.Run()
}

func gitCommit() string {
	content, err := exec.Command("git", "rev-parse", "--short", "HEAD").Output()
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(content))
}

func spinner(title string, done <-chan struct{}) {
	s := spin.New()
	for {
		select {
		case <-done:
			fmt.Print("\r")
			return
		case <-time.After(100 * time.Millisecond):
			fmt.Printf("\r  \033[36m%s\033[m %s ", title, s.Next())
		}
	}
}
