package root

import (
	"context"
	"fmt"
	"io"

	"github.com/busrayesinn/eventra/internal/engine"
	"github.com/busrayesinn/eventra/internal/storage"
	"github.com/busrayesinn/eventra/internal/ui"
)

// toastNotifier prints one-shot notifications to the command output, the
// CLI stand-in for the mobile app's toast.
func toastNotifier(out io.Writer) engine.Notifier {
	return engine.NotifierFunc(func(title, message string) {
		fmt.Fprintln(out, ui.Toast(title, message))
	})
}

func openService(ctx context.Context, out io.Writer) (*engine.Service, func(), error) {
	path, err := storage.ResolveDBPath()
	if err != nil {
		return nil, nil, err
	}
	kv, err := storage.Open(ctx, path)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() {
		_ = kv.Close()
	}
	return engine.NewService(kv, toastNotifier(out)), cleanup, nil
}
