package app

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/vancomm/minesweeper/internal/config"
	"github.com/vancomm/minesweeper/internal/mines"
)

var errQuit = errors.New("quit")

type App struct {
	logger *slog.Logger
	in     io.Reader
	out    io.Writer
	rnd    *rand.Rand
	level  mines.Level
	board  *mines.Board
	quit   bool
}

func New(logger *slog.Logger, cfg *config.Game, in io.Reader, out io.Writer) (*App, error) {
	rnd := createRand(cfg.Seed)
	board, err := mines.NewBoard(cfg.Level, rnd)
	if err != nil {
		return nil, fmt.Errorf("unable to create board: %w", err)
	}

	app := &App{
		logger: logger,
		in:     in,
		out:    out,
		rnd:    rnd,
		level:  cfg.Level,
		board:  board,
	}

	return app, nil
}

// Start plays until the player quits, the input ends or ctx is cancelled.
func (a *App) Start(ctx context.Context) error {
	g, gCtx := errgroup.WithContext(ctx)

	lines := make(chan string)
	g.Go(func() error {
		return a.play(gCtx, lines)
	})
	g.Go(func() error {
		<-gCtx.Done()
		a.logger.Debug("game loop stopped", slog.Any("cause", context.Cause(gCtx)))
		return nil
	})
	go a.scan(gCtx, lines)

	err := g.Wait()
	if errors.Is(err, errQuit) || errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// scan is not part of the group: a read from a terminal cannot be
// interrupted, so the goroutine is left to die with the process.
func (a *App) scan(ctx context.Context, lines chan<- string) {
	defer close(lines)
	s := bufio.NewScanner(a.in)
	for s.Scan() {
		select {
		case lines <- s.Text():
		case <-ctx.Done():
			return
		}
	}
	if err := s.Err(); err != nil {
		a.logger.Error("unable to read input", slog.Any("error", err))
	}
}

func (a *App) play(ctx context.Context, lines <-chan string) error {
	a.render()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case line, ok := <-lines:
			if !ok {
				return errQuit
			}
			a.handleLine(line)
			if a.quit {
				return errQuit
			}
		}
	}
}

func (a *App) handleLine(line string) {
	text := strings.TrimSpace(line)
	if text == "" {
		return
	}
	a.logger.Debug("> " + text)

	wasOver := a.over()
	for _, c := range byPiece(text, ";") {
		c = strings.TrimSpace(c)
		if c == "" {
			continue
		}
		if err := a.executeCommand(c); err != nil {
			a.logger.Warn("command failed", slog.String("command", c), slog.Any("error", err))
			fmt.Fprintf(a.out, "error: %s\n", err)
			break
		}
		if a.quit {
			return
		}
	}

	if !wasOver && a.over() {
		a.logger.Info(
			"game over",
			slog.String("level", a.level.String()),
			slog.Bool("won", a.board.IsWon()),
		)
	}
	a.render()
}

func (a *App) over() bool {
	return a.board.IsWon() || a.board.IsLost()
}

func (a *App) render() {
	b := a.board
	fmt.Fprint(a.out, b.Render(b.IsLost()))
	switch {
	case b.IsWon():
		fmt.Fprintln(a.out, "you won!")
	case b.IsLost():
		fmt.Fprintln(a.out, "boom! you lost.")
	default:
		fmt.Fprintf(a.out, "%s %dx%d, mines left: %d\n",
			a.level, b.Rows(), b.Cols(), b.Remaining(),
		)
	}
}
