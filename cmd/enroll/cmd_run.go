package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/tinywasm/enroll"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Drive one form session from commands on stdin",
	Long: `Reads one command per line and applies it to a fresh session:

  set <field> <value...>   name, phone, email or college
  share                    click the share button
  dragenter | dragover | dragleave
  drop [name[:type]]...    drop files on the upload zone
  pick [name[:type]]...    choose files in the picker (non-images are filtered)
  submit                   attempt to submit
  state                    print the session state

Blank lines and lines starting with # are skipped.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, closeDB, err := openStore()
		if err != nil {
			return err
		}
		defer closeDB()

		out := cmd.OutOrStdout()
		s, err := enroll.NewSession(store, sessionConfig(out))
		if err != nil {
			return err
		}
		return runScript(s, cmd.InOrStdin(), out)
	},
}

// runScript applies each line of in to s. Gate rejections are reported and the
// script continues; malformed commands stop it.
func runScript(s *enroll.Session, in io.Reader, out io.Writer) error {
	if s.State() == enroll.Terminal {
		fmt.Fprintln(out, "already submitted")
	}

	sc := bufio.NewScanner(in)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		if err := apply(s, text, out); err != nil {
			return fmt.Errorf("line %d: %w", line, err)
		}
	}
	return sc.Err()
}

func apply(s *enroll.Session, text string, out io.Writer) error {
	verb, rest, _ := strings.Cut(text, " ")
	rest = strings.TrimSpace(rest)

	switch verb {
	case "set":
		name, value, _ := strings.Cut(rest, " ")
		key, err := enroll.ParseFieldKey(name)
		if err != nil {
			return fmt.Errorf("set %q: %w", name, err)
		}
		s.OnFieldChange(key, strings.TrimSpace(value))
	case "share":
		fmt.Fprintf(out, "shares %d/%d\n", s.OnShareClick(), enroll.Quota)
	case "dragenter":
		s.OnDragEnter()
	case "dragover":
		s.OnDragOver()
	case "dragleave":
		s.OnDragLeave()
	case "drop":
		s.OnDrop(parseFiles(rest))
	case "pick":
		var accepted []enroll.Attachment
		for _, f := range parseFiles(rest) {
			if enroll.Accepts(f) {
				accepted = append(accepted, f)
			}
		}
		s.OnFilePicked(accepted)
	case "submit":
		if err := s.OnSubmitAttempt(); err != nil {
			if _, ok := enroll.NoticeFor(err); !ok {
				return err
			}
			fmt.Fprintf(out, "rejected: %v\n", err)
			return nil
		}
		fmt.Fprintf(out, "state %s\n", s.State())
	case "state":
		printState(s, out)
	default:
		return fmt.Errorf("unknown command %q", verb)
	}
	return nil
}

// parseFiles reads "name[:type]" tokens. A missing type is taken as image/png.
func parseFiles(rest string) []enroll.Attachment {
	var files []enroll.Attachment
	for _, tok := range strings.Fields(rest) {
		name, typ, ok := strings.Cut(tok, ":")
		if !ok {
			typ = "image/png"
		}
		files = append(files, enroll.Attachment{Name: name, Type: typ})
	}
	return files
}

func printState(s *enroll.Session, out io.Writer) {
	snap := s.Snapshot()
	file := "-"
	if snap.Attachment != nil {
		file = snap.Attachment.Name
	}
	fmt.Fprintf(out, "state %s shares %d/%d file %s drag %t can-submit %t\n",
		s.State(), snap.Shares, enroll.Quota, file, s.DragActive(), s.CanSubmit())
}
