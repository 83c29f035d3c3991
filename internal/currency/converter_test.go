package currency

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/expensehub/expense-tracker/internal/common"
)

func TestConvertUsesHistoricalRate(t *testing.T) {
	var gotPath, gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"amount":100,"base":"USD","date":"2026-02-14","rates":{"INR":8312.45}}`))
	}))
	defer srv.Close()

	c := NewClient(Config{BaseURL: srv.URL}, nil)
	asOf := time.Date(2026, time.February, 14, 0, 0, 0, 0, time.UTC)

	got, err := c.Convert(context.Background(), 100, "usd", "INR", asOf)
	if err != nil {
		t.Fatalf("convert: %v", err)
	}
	if got != 8312.45 {
		t.Fatalf("converted = %v, want 8312.45", got)
	}
	if gotPath != "/2026-02-14" {
		t.Fatalf("request path = %q, want /2026-02-14", gotPath)
	}
	if gotQuery != "amount=100&from=USD&to=INR" {
		t.Fatalf("request query = %q", gotQuery)
	}
}

func TestConvertSameCurrencySkipsNetwork(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("unexpected network call for identical currencies")
	}))
	defer srv.Close()

	c := NewClient(Config{BaseURL: srv.URL}, nil)
	got, err := c.Convert(context.Background(), 250.75, "EUR", "EUR", time.Now())
	if err != nil {
		t.Fatalf("convert: %v", err)
	}
	if got != 250.75 {
		t.Fatalf("converted = %v, want amount unchanged", got)
	}
}

func TestConvertErrors(t *testing.T) {
	cases := []struct {
		name    string
		handler http.HandlerFunc
		from    string
		to      string
	}{
		{
			name: "unknown currency",
			handler: func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, `{"message":"not found"}`, http.StatusNotFound)
			},
			from: "USD", to: "ZZZ",
		},
		{
			name: "rate missing from response",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{"rates":{}}`))
			},
			from: "USD", to: "INR",
		},
		{
			name: "malformed response",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`not json`))
			},
			from: "USD", to: "INR",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(tc.handler)
			defer srv.Close()

			c := NewClient(Config{BaseURL: srv.URL}, nil)
			_, err := c.Convert(context.Background(), 10, tc.from, tc.to, time.Now())
			if !errors.Is(err, common.ErrConversion) {
				t.Fatalf("error = %v, want ErrConversion", err)
			}
		})
	}
}

func TestConvertRejectsBadCodes(t *testing.T) {
	c := NewClient(Config{BaseURL: "http://127.0.0.1:0"}, nil)
	if _, err := c.Convert(context.Background(), 10, "US", "INR", time.Now()); !errors.Is(err, common.ErrConversion) {
		t.Fatalf("error = %v, want ErrConversion", err)
	}
}
