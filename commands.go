package paint

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"golang.org/x/text/width"
)

// Command is a named UI action applied to a session. Arguments arrive as the
// raw text the user typed or the toolkit produced.
type Command func(s *Session, args ...string) error

// Commands maps command names to actions. The toolbar and the command line
// front end both go through this table, so a button and its typed
// equivalent behave identically.
var Commands = map[string]Command{
	"pointer-down": pointerCommand((*Session).PointerDown),
	"pointer-move": pointerCommand((*Session).PointerMove),
	"pointer-up":   pointerCommand((*Session).PointerUp),

	"brush-size": func(s *Session, args ...string) error {
		n, err := numberArg(args, 0)
		if err != nil {
			return err
		}
		return s.SetBrushSize(n)
	},
	"opacity": func(s *Session, args ...string) error {
		n, err := numberArg(args, 0)
		if err != nil {
			return err
		}
		return s.SetOpacity(n)
	},
	"color": func(s *Session, args ...string) error {
		if len(args) < 1 {
			return fmt.Errorf("%w: missing color", ErrInvalidColor)
		}
		c, err := ParseColor(args[0])
		if err != nil {
			warn("color rejected", err)
			return err
		}
		s.SetColor(c)
		return nil
	},
	"eraser": func(s *Session, _ ...string) error {
		s.ToggleEraser()
		return nil
	},
	"stamp": func(s *Session, args ...string) error {
		if len(args) == 0 || args[0] == "" {
			s.LoadBrushStamp(nil)
			return nil
		}
		return s.LoadBrushStampFile(strings.Join(args, " "))
	},
	"resize": func(s *Session, args ...string) error {
		w, err := numberArg(args, 0)
		if err != nil {
			return err
		}
		h, err := numberArg(args, 1)
		if err != nil {
			return err
		}
		return s.ResizeCanvas(w, h)
	},
	"add-layer": func(s *Session, _ ...string) error {
		_, err := s.AddLayer()
		return err
	},
	"select-layer": func(s *Session, args ...string) error {
		i, err := numberArg(args, 0)
		if err != nil {
			return err
		}
		return s.SelectLayer(i)
	},
	"next-layer": func(s *Session, _ ...string) error {
		s.NextLayer()
		return nil
	},
	"prev-layer": func(s *Session, _ ...string) error {
		s.PreviousLayer()
		return nil
	},
	"save":       pathCommand((*Session).Save),
	"load":       pathCommand((*Session).Load),
	"export-pdf": pathCommand((*Session).ExportPDF),
}

// CommandNames returns the registered command names, sorted.
func CommandNames() []string {
	names := make([]string, 0, len(Commands))
	for name := range Commands {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Dispatch runs the named command. Unknown names return ErrUnknownCommand.
func (s *Session) Dispatch(name string, args ...string) error {
	cmd, ok := Commands[name]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownCommand, name)
	}
	return cmd(s, args...)
}

// ParseNumber parses user-entered integer text. Surrounding space is ignored
// and full-width digits are accepted. Anything else returns
// ErrInvalidNumericInput.
func ParseNumber(text string) (int, error) {
	t := width.Narrow.String(strings.TrimSpace(text))
	n, err := strconv.Atoi(t)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidNumericInput, text)
	}
	return n, nil
}

func numberArg(args []string, i int) (int, error) {
	if i >= len(args) {
		return 0, fmt.Errorf("%w: missing argument %d", ErrInvalidNumericInput, i+1)
	}
	n, err := ParseNumber(args[i])
	if err != nil {
		warn("numeric input rejected", err)
		return 0, err
	}
	return n, nil
}

func pointerCommand(fn func(*Session, int, int)) Command {
	return func(s *Session, args ...string) error {
		x, err := numberArg(args, 0)
		if err != nil {
			return err
		}
		y, err := numberArg(args, 1)
		if err != nil {
			return err
		}
		fn(s, x, y)
		return nil
	}
}

// pathCommand joins its arguments with single spaces, so a path split on
// whitespace by the caller is put back together.
func pathCommand(fn func(*Session, string) error) Command {
	return func(s *Session, args ...string) error {
		if len(args) == 0 {
			return nil
		}
		return fn(s, strings.Join(args, " "))
	}
}
