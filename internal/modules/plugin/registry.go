package plugin

import (
	"context"
	"errors"
	"sort"
)

var ErrUnknownPlugin = errors.New("unknown plugin")

// Descriptor describes one registered site plugin. The slot tells the
// frontend where the widget mounts; the registry only decides visibility.
type Descriptor struct {
	Name        string `json:"name"`
	Title       string `json:"title"`
	Slot        string `json:"slot"`
	Description string `json:"description,omitempty"`
	Enabled     bool   `json:"enabled"`
}

// Registered plugins are fixed at build time; only their enabled flag is
// runtime state.
var registered = map[string]Descriptor{
	"weather_widget": {Name: "weather_widget", Title: "Live Weather", Slot: "sidebar",
		Description: "Current conditions at the temple site."},
	"news_ticker": {Name: "news_ticker", Title: "Yatra News", Slot: "footer",
		Description: "Latest pilgrimage and route news."},
	"price_alerts": {Name: "price_alerts", Title: "Price Alerts", Slot: "package_page",
		Description: "Notify wishlisted travellers on price drops."},
	"whatsapp_chat": {Name: "whatsapp_chat", Title: "WhatsApp Chat", Slot: "floating",
		Description: "Direct chat bubble to the operations desk."},
}

type flagSource interface {
	Flags(ctx context.Context) (map[string]bool, error)
	SetEnabled(ctx context.Context, name string, enabled bool) error
}

type Registry struct {
	flags flagSource
}

func NewRegistry(flags flagSource) *Registry {
	return &Registry{flags: flags}
}

// List returns every registered plugin with its flag applied, name-ordered.
// Plugins without a stored flag report disabled.
func (r *Registry) List(ctx context.Context) ([]Descriptor, error) {
	flags, err := r.flags.Flags(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]Descriptor, 0, len(registered))
	for name, d := range registered {
		d.Enabled = flags[name]
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *Registry) Get(ctx context.Context, name string) (*Descriptor, error) {
	d, ok := registered[name]
	if !ok {
		return nil, ErrUnknownPlugin
	}
	flags, err := r.flags.Flags(ctx)
	if err != nil {
		return nil, err
	}
	d.Enabled = flags[name]
	return &d, nil
}

func (r *Registry) SetEnabled(ctx context.Context, name string, enabled bool) error {
	if _, ok := registered[name]; !ok {
		return ErrUnknownPlugin
	}
	return r.flags.SetEnabled(ctx, name, enabled)
}
