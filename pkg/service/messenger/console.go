package messenger

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strings"
	"sync"

	"github.com/fatih/color"
	"github.com/secmon-lab/flare/pkg/domain/interfaces"
	"github.com/secmon-lab/flare/pkg/domain/model/notification"
)

// Console prints payloads instead of delivering them. Every token is reported
// as delivered. Useful for the dev server and for checking notification text
// without Firebase credentials.
type Console struct {
	mu sync.Mutex
	w  io.Writer
}

var _ interfaces.Messenger = &Console{}

func NewConsole(w io.Writer) *Console {
	return &Console{w: w}
}

func (x *Console) SendMulticast(ctx context.Context, tokens []string, payload notification.Payload) (*notification.Report, error) {
	x.mu.Lock()
	defer x.mu.Unlock()

	red := color.New(color.FgRed, color.Bold)
	cyan := color.New(color.FgCyan)

	_, _ = red.Fprintf(x.w, "Push notification to %d device(s)\n", len(tokens))
	fmt.Fprintf(x.w, "  Title: %s\n", payload.Title)
	fmt.Fprintf(x.w, "  Body:  %s\n", strings.ReplaceAll(payload.Body, "\n", "\n         "))

	keys := make([]string, 0, len(payload.Data))
	for k := range payload.Data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		_, _ = cyan.Fprintf(x.w, "  data.%s", k)
		fmt.Fprintf(x.w, " = %q\n", payload.Data[k])
	}

	for _, token := range tokens {
		fmt.Fprintf(x.w, "  -> %s\n", notification.MaskToken(token))
	}
	fmt.Fprintln(x.w)

	return &notification.Report{SuccessCount: len(tokens)}, nil
}
