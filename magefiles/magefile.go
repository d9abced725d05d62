//go:build mage

package main

import (
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	serverBin = "bin/hrms-lite"
	devapiBin = "bin/hrms-devapi"
)

// Generate regenerates the gomock mocks (go:generate directives).
func Generate() error {
	if _, err := exec.LookPath("mockgen"); err != nil {
		fmt.Println(">> mockgen not found; install with:")
		fmt.Println("   go install go.uber.org/mock/mockgen@latest")
		return err
	}
	fmt.Println(">> go generate ./...")
	return sh.Run("go", "generate", "./...")
}

// Build tidies deps, then compiles the UI server to ./bin/hrms-lite.
func Build() error {
	mg.Deps(Tidy)
	fmt.Println(">> Building server binary...")
	return sh.Run("go", "build", "-o", serverBin, "./cmd/server")
}

// BuildDevAPI compiles the development backend to ./bin/hrms-devapi.
func BuildDevAPI() error {
	mg.Deps(Tidy)
	fmt.Println(">> Building devapi binary...")
	return sh.Run("go", "build", "-o", devapiBin, "./cmd/devapi")
}

// Run builds then executes the UI server.
func Run() error {
	mg.Deps(Build)
	fmt.Println(">> Starting server on :" + envOr("PORT", "8080") + " ...")
	return sh.Run("./" + serverBin)
}

// Dev starts the UI server via go run.
func Dev() error {
	fmt.Println(">> Dev mode: go run ./cmd/server ...")
	return goRun("./cmd/server")
}

// DevAPI starts the SQLite-backed development backend via go run.
func DevAPI() error {
	fmt.Println(">> Dev mode: go run ./cmd/devapi ...")
	return goRun("./cmd/devapi")
}

// Stack runs the devapi in the background and the UI server in the
// foreground, pointing API_URL at the devapi. Ctrl-C stops both.
func Stack() error {
	apiPort := envOr("DEVAPI_PORT", "8000")

	fmt.Println(">> Starting devapi (go run)...")
	backend := command("go", "run", "./cmd/devapi")
	if err := backend.Start(); err != nil {
		return fmt.Errorf("start devapi: %w", err)
	}

	fmt.Println(">> Starting server (go run)...")
	server := command("go", "run", "./cmd/server")
	server.Env = append(server.Env, "API_URL=http://localhost:"+apiPort)
	if err := server.Start(); err != nil {
		backend.Process.Kill()
		return fmt.Errorf("start server: %w", err)
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	fmt.Println("\n>> Shutting down...")
	server.Process.Kill()
	backend.Process.Kill()
	return nil
}

// Tidy runs go mod tidy.
func Tidy() error {
	fmt.Println(">> go mod tidy...")
	return sh.Run("go", "mod", "tidy")
}

// Test runs all unit tests.
func Test() error {
	fmt.Println(">> Running tests...")
	return sh.Run("go", "test", "./...")
}

// Lint runs golangci-lint if available.
func Lint() error {
	if _, err := exec.LookPath("golangci-lint"); err != nil {
		fmt.Println(">> golangci-lint not found; skipping.")
		return nil
	}
	return sh.Run("golangci-lint", "run", "./...")
}

// Clean removes build artifacts and the local devapi SQLite DB.
func Clean() error {
	fmt.Println(">> Cleaning...")
	if err := os.RemoveAll("bin"); err != nil {
		return err
	}
	return sh.Rm(envOr("DB_PATH", "hrms.db"))
}

// Install builds and installs both binaries to $GOPATH/bin.
func Install() error {
	mg.Deps(Build, BuildDevAPI)
	return sh.Run("go", "install", "./cmd/server", "./cmd/devapi")
}

func command(name string, args ...string) *exec.Cmd {
	cmd := exec.Command(name, args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	cmd.Env = os.Environ()
	return cmd
}

func goRun(pkg string) error {
	return command("go", "run", pkg).Run()
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func init() {
	err := godotenv.Load()
	if err != nil {
		slog.Warn("error loading .env file", "err", err)
	}
}
