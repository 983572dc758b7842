// Command termctl-demo walks the termctl surface on the current
// terminal: alternate screen, cursor addressing, styled output,
// attribute set algebra and an OSC 52 clipboard copy.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"time"

	"github.com/lixenwraith/termctl"
	"github.com/lixenwraith/termctl/clipboard"
	"github.com/lixenwraith/termctl/cursor"
	"github.com/lixenwraith/termctl/screen"
	"github.com/lixenwraith/termctl/style"
)

var (
	debugFlag = flag.Bool("debug", false, "Log each step to stderr")
	copyFlag  = flag.String("copy", "", "Copy this text to the clipboard via OSC 52")
	holdFlag  = flag.Duration("hold", 2*time.Second, "How long to hold the demo screen")
)

func main() {
	flag.Parse()

	log.SetFlags(log.Ltime | log.Lmicroseconds)
	if !*debugFlag {
		log.SetOutput(io.Discard)
	}

	if !termctl.IsTTY(os.Stdout) {
		fmt.Fprintln(os.Stderr, "termctl-demo: stdout is not a terminal")
		os.Exit(1)
	}

	// A panic can land anywhere mid-screen, so hard-reset rather than
	// unwinding politely
	defer func() {
		if r := recover(); r != nil {
			screen.EmergencyReset(os.Stdout)
			fmt.Fprintf(os.Stderr, "termctl-demo crashed: %v\n", r)
			os.Exit(1)
		}
	}()

	// Leave the terminal usable on Ctrl-C
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt)
	go func() {
		<-sig
		restoreTerminal()
		os.Exit(1)
	}()

	w := bufio.NewWriter(os.Stdout)
	if err := run(w); err != nil {
		restoreTerminal()
		fmt.Fprintf(os.Stderr, "termctl-demo: %v\n", err)
		os.Exit(1)
	}
}

// restoreTerminal writes straight to stdout, bypassing any half-written
// buffer the failure left behind.
func restoreTerminal() {
	termctl.Execute(os.Stdout,
		screen.LeaveAlternateScreen,
		cursor.Show,
		style.ResetColor,
	)
}

func run(w *bufio.Writer) error {
	cols, rows, err := screen.Size()
	if err != nil {
		return fmt.Errorf("query size: %w", err)
	}
	log.Printf("terminal %dx%d", cols, rows)

	if err := termctl.Execute(w,
		screen.EnterAlternateScreen,
		screen.Clear(screen.All),
		cursor.Hide,
		screen.SetTitle("termctl demo"),
	); err != nil {
		return err
	}
	log.Println("alternate screen entered")

	// A styled banner and a plain line, queued as one burst
	banner := style.ContentStyle{
		Fg:         style.Black,
		Bg:         style.DarkCyan,
		Attributes: style.NewAttributes(style.Bold),
	}
	if err := termctl.Queue(w,
		cursor.MoveTo(2, 1),
		banner.Apply(" termctl "),
		cursor.MoveTo(2, 3),
		style.Foreground(style.Green),
		style.Print("queued commands, one flush"),
		style.ResetColor,
	); err != nil {
		return err
	}

	// Attribute set algebra picks what both styles share
	emphasis := style.NewAttributes(style.Bold, style.Underlined)
	muted := style.NewAttributes(style.Dim, style.Underlined)

	line := 5
	for it := emphasis.Intersect(muted).Iter(); ; {
		a, ok := it.Next()
		if !ok {
			break
		}
		if err := termctl.Queue(w,
			cursor.MoveTo(2, line),
			style.SetAttribute(a),
			style.Printf("shared attribute: %v", a),
			style.SetAttribute(style.Reset),
		); err != nil {
			return err
		}
		line++
	}

	// Truecolor gradient strip
	for i := 0; i < 32; i++ {
		c := style.RGB(uint8(255-i*8), uint8(40+i*4), uint8(i*8))
		if err := termctl.Queue(w,
			cursor.MoveTo(2+i, line+1),
			style.Background(c),
			style.Print(" "),
		); err != nil {
			return err
		}
	}
	if err := termctl.Queue(w, style.ResetColor); err != nil {
		return err
	}
	first := style.RGB(255, 40, 0)
	log.Printf("gradient start %v quantizes to %v / %v", first, first.To256(), first.To16())

	if *copyFlag != "" {
		if err := termctl.Queue(w, clipboard.Copy(*copyFlag)); err != nil {
			return err
		}
		log.Printf("copied %d bytes to the clipboard", len(*copyFlag))
	}

	// Everything queued so far reaches the terminal in this one flush
	if err := termctl.Execute(w, cursor.MoveTo(0, line+3)); err != nil {
		return err
	}

	time.Sleep(*holdFlag)

	return termctl.Execute(w,
		screen.LeaveAlternateScreen,
		cursor.Show,
		style.ResetColor,
	)
}
