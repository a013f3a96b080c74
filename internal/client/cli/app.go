package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/usermanager/internal/client/client"
	"github.com/dmitrijs2005/usermanager/internal/client/config"
)

type App struct {
	config *config.Config
	client client.Client
	reader *bufio.Reader
	out    io.Writer
	login  string
}

func NewApp(c *config.Config) (*App, error) {
	apiClient, err := client.NewGRPCClient(c.ServerEndpointAddr)
	if err != nil {
		return nil, err
	}
	return newApp(c, apiClient, os.Stdin, os.Stdout), nil
}

func newApp(c *config.Config, cl client.Client, in io.Reader, out io.Writer) *App {
	return &App{config: c, client: cl, reader: bufio.NewReader(in), out: out}
}

func (a *App) Run(ctx context.Context) {
	defer func() { _ = a.client.Close() }()

	fmt.Fprintln(a.out, "Welcome to usermanager CLI (type 'help' for commands)")

	pingCtx, cancel := a.withTimeout(ctx)
	if err := a.client.Ping(pingCtx); err != nil {
		fmt.Fprintf(a.out, "warning: %s is not reachable: %v\n", a.config.ServerEndpointAddr, err)
	}
	cancel()

	runREPL(ctx, a, a.getStatus, lineReader(a.reader))
}

func (a *App) isLoggedIn() bool {
	return a.login != ""
}

func (a *App) getStatus() string {
	if a.login == "" {
		return "(anonymous)"
	}
	return fmt.Sprintf("(%s)", a.login)
}

func (a *App) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, a.config.RequestTimeout)
}
