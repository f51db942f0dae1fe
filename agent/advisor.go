// Package agent implements the interactive AI advisor: a Gemini chat primed
// with a digest of the current ledger, able to answer questions about the
// user's finances.
package agent

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"google.golang.org/genai"
)

const defaultModel = "gemini-2.5-flash"

const systemPrompt = `You are a personal finance advisor. You are given a
digest of the user's ledger: accounts with balances, recent activity and
spending per category. Answer questions about it concisely. You cannot
modify the ledger; when the user asks for a change, tell them which pft
command to run instead.`

// Advisor is the chat session with the finance advisor.
type Advisor struct {
	w      io.Writer
	r      *bufio.Reader
	digest string
	model  string
	chat   *genai.Chat
}

// New creates an Advisor. The digest is injected into the model's system
// instruction so the conversation is grounded in the actual ledger.
func New(w io.Writer, r io.Reader, digest string) *Advisor {
	return &Advisor{
		w:      w,
		r:      bufio.NewReader(r),
		digest: digest,
		model:  defaultModel,
	}
}

// Start creates the underlying Gemini chat.
func (a *Advisor) Start(ctx context.Context, client *genai.Client) error {
	config := &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{Text: systemPrompt + "\n\nLedger digest:\n" + a.digest}},
		},
	}
	chat, err := client.Chats.Create(ctx, a.model, config, nil)
	if err != nil {
		return err
	}
	a.chat = chat
	return nil
}

// Ask sends one question and returns the advisor's text answer.
func (a *Advisor) Ask(ctx context.Context, question string) (string, error) {
	resp, err := a.chat.Send(ctx, &genai.Part{Text: question})
	if err != nil {
		return "", err
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no response from advisor")
	}
	return resp.Candidates[0].Content.Parts[0].Text, nil
}

const prompt = "advisor> "

// Run starts the interactive REPL session. Initial prompts, if any, are
// consumed before reading from the user.
func (a *Advisor) Run(ctx context.Context, client *genai.Client, prompts ...string) error {
	if a.chat == nil {
		if err := a.Start(ctx, client); err != nil {
			return err
		}
	}

	fmt.Fprintln(a.w, "Welcome to the pft advisor. Type 'bye' to exit.")

	for {
		fmt.Fprint(a.w, prompt)
		var input string

		if len(prompts) > 0 {
			input, prompts = prompts[0], prompts[1:]
			input = strings.TrimSpace(input)
			if input == "" {
				continue
			}
			fmt.Fprintln(a.w, input)
		} else {
			var err error
			input, err = a.r.ReadString('\n')
			if err != nil {
				if err == io.EOF {
					return nil // Clean exit on Ctrl+D.
				}
				return err
			}
		}

		if strings.TrimSpace(input) == "bye" {
			return nil
		}

		answer, err := a.Ask(ctx, input)
		if err != nil {
			return err
		}
		fmt.Fprintln(a.w, answer)
	}
}
