package assessor

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfirm(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"yes\n", true},
		{"y\n", true},
		{"  YES  \n", true},
		{"Y\n", true},
		{"no\n", false},
		{"\n", false},
		{"maybe\n", false},
		{"yess\n", false},
	}

	for _, tt := range tests {
		t.Run(strings.TrimSpace(tt.input), func(t *testing.T) {
			var out bytes.Buffer
			got, err := NewPrompter(strings.NewReader(tt.input), &out).Confirm(context.Background(), "WPS?")
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Contains(t, out.String(), "WPS?")
		})
	}
}

func TestConfirm_InputClosed(t *testing.T) {
	_, err := NewPrompter(strings.NewReader(""), &bytes.Buffer{}).Confirm(context.Background(), "WPS?")
	assert.ErrorIs(t, err, ErrInputClosed)
}

func TestInteger_RepromptsUntilValid(t *testing.T) {
	var out bytes.Buffer
	p := NewPrompter(strings.NewReader("abc\n\n12.5\n-3\n0\n 10 \n"), &out)

	n, err := p.Integer(context.Background(), "Length:")
	require.NoError(t, err)
	assert.Equal(t, 10, n)
	assert.Equal(t, 6, strings.Count(out.String(), "Length:"))
	assert.Equal(t, 5, strings.Count(out.String(), "Please enter a valid positive number!"))
}

func TestInteger_InputClosedWhileRetrying(t *testing.T) {
	p := NewPrompter(strings.NewReader("abc\n"), &bytes.Buffer{})
	_, err := p.Integer(context.Background(), "Length:")
	assert.ErrorIs(t, err, ErrInputClosed)
}

func TestInterview_AsksInOrder(t *testing.T) {
	var out bytes.Buffer
	p := NewPrompter(strings.NewReader("y\nabc\n9\nno\n"), &out)

	answers, err := Interview(context.Background(), p, Preset{})
	require.NoError(t, err)
	assert.Equal(t, Answers{WPSEnabled: true, PasswordLength: 9, GuestNetworks: false}, answers)

	text := out.String()
	wps := strings.Index(text, "WPS")
	length := strings.Index(text, "password length")
	guest := strings.Index(text, "guest/open")
	assert.True(t, wps < length && length < guest, "unexpected prompt order: %q", text)
}

func TestInterview_SkipsPresetAnswers(t *testing.T) {
	wps, length := true, 16
	var out bytes.Buffer
	p := NewPrompter(strings.NewReader("yes\n"), &out)

	answers, err := Interview(context.Background(), p, Preset{WPSEnabled: &wps, PasswordLength: &length})
	require.NoError(t, err)
	assert.Equal(t, Answers{WPSEnabled: true, PasswordLength: 16, GuestNetworks: true}, answers)
	assert.NotContains(t, out.String(), "WPS")
	assert.NotContains(t, out.String(), "password length")
}

func TestInterview_FullyPresetReadsNothing(t *testing.T) {
	wps, guest, length := false, false, 20
	answers, err := Interview(context.Background(), NewPrompter(strings.NewReader(""), &bytes.Buffer{}), Preset{
		WPSEnabled:     &wps,
		PasswordLength: &length,
		GuestNetworks:  &guest,
	})
	require.NoError(t, err)
	assert.Equal(t, Answers{PasswordLength: 20}, answers)
}

func TestConfirm_CancelledWhileWaiting(t *testing.T) {
	in, w := io.Pipe()
	defer w.Close()

	var out bytes.Buffer
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	p := NewPrompter(in, &out)
	go func() {
		_, err := p.Confirm(ctx, "WPS?")
		done <- err
	}()

	cancel()
	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(5 * time.Second):
		t.Fatal("Confirm did not return after cancellation")
	}
}

func TestInterview_CancelledContextAsksNothing(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	_, err := Interview(ctx, NewPrompter(strings.NewReader("yes\n"), &out), Preset{})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, out.String())
}

func TestInteger_ReadsAcrossQuestions(t *testing.T) {
	in, w := io.Pipe()
	p := NewPrompter(in, &bytes.Buffer{})

	go func() {
		_, _ = io.WriteString(w, "x\n")
		_, _ = io.WriteString(w, "14\n")
	}()

	n, err := p.Integer(context.Background(), "Length:")
	require.NoError(t, err)
	assert.Equal(t, 14, n)

	require.NoError(t, w.Close())
	_, err = p.Confirm(context.Background(), "WPS?")
	assert.ErrorIs(t, err, ErrInputClosed)
}
