package plugin

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeFlags struct {
	flags map[string]bool
	err   error
}

func (f *fakeFlags) Flags(ctx context.Context) (map[string]bool, error) {
	return f.flags, f.err
}

func (f *fakeFlags) SetEnabled(ctx context.Context, name string, enabled bool) error {
	if f.flags == nil {
		f.flags = map[string]bool{}
	}
	f.flags[name] = enabled
	return nil
}

func TestListAppliesFlagsAndDefaultsToDisabled(t *testing.T) {
	reg := NewRegistry(&fakeFlags{flags: map[string]bool{"weather_widget": true}})

	plugins, err := reg.List(context.Background())
	require.NoError(t, err)
	require.Len(t, plugins, len(registered))

	byName := map[string]bool{}
	for _, p := range plugins {
		byName[p.Name] = p.Enabled
	}
	assert.True(t, byName["weather_widget"])
	assert.False(t, byName["news_ticker"])
}

func TestGetUnknownPlugin(t *testing.T) {
	reg := NewRegistry(&fakeFlags{})
	_, err := reg.Get(context.Background(), "crystal_ball")
	assert.ErrorIs(t, err, ErrUnknownPlugin)
}

func TestSetEnabledRejectsUnregistered(t *testing.T) {
	flags := &fakeFlags{}
	reg := NewRegistry(flags)

	require.NoError(t, reg.SetEnabled(context.Background(), "news_ticker", true))
	assert.True(t, flags.flags["news_ticker"])

	err := reg.SetEnabled(context.Background(), "crystal_ball", true)
	assert.ErrorIs(t, err, ErrUnknownPlugin)
}
