package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Vovarama1992/email-reply-writer/internal/email"
)

var (
	genTone string
	genFile string
	genRaw  bool
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate replies for one message read from --file or stdin",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		in := cmd.InOrStdin()
		if genFile != "" {
			f, err := os.Open(genFile)
			if err != nil {
				return err
			}
			defer f.Close()
			in = f
		}

		content, err := readMessage(in, genRaw)
		if err != nil {
			return err
		}

		svc := email.NewService(nil, newModel(cfg))
		replies := email.SignReplies(
			svc.Generate(context.Background(), email.ReplyRequest{Content: content, Tone: genTone}),
			cfg.SignatureName,
		)

		out := cmd.OutOrStdout()
		for i, r := range replies {
			if i > 0 {
				fmt.Fprintln(out, "---")
			}
			fmt.Fprintln(out, r)
		}
		return nil
	},
}

func init() {
	generateCmd.Flags().StringVar(&genTone, "tone", "", "tone to prioritize (e.g. formal)")
	generateCmd.Flags().StringVarP(&genFile, "file", "f", "", "read the message from this file instead of stdin")
	generateCmd.Flags().BoolVar(&genRaw, "raw", false, "input is a full RFC 822 message")
}

func readMessage(r io.Reader, raw bool) (string, error) {
	if raw {
		return email.ParseRawMessage(r)
	}

	b, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(string(b)) == "" {
		return "", fmt.Errorf("empty message")
	}
	return string(b), nil
}
