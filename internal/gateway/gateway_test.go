package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestMobileMoneyInitiate(t *testing.T) {
	t.Run("success sends the wallet payload once", func(t *testing.T) {
		var calls int32
		var got mobileMoneyRequest
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			atomic.AddInt32(&calls, 1)
			require.Equal(t, http.MethodPost, r.Method)
			require.Equal(t, "application/json", r.Header.Get("Content-Type"))
			require.NoError(t, json.NewDecoder(r.Body).Decode(&got))

			json.NewEncoder(w).Encode(Response{Success: true, Message: "charge pending"})
		}))
		defer server.Close()

		client := NewMTN(server.URL, "UGX", 5*time.Second)
		resp, err := client.Initiate(context.Background(), Request{Amount: 50000, Phone: "256700000001"})

		require.NoError(t, err)
		require.True(t, resp.Success)
		require.Equal(t, "charge pending", resp.Message)
		require.Equal(t, int32(1), atomic.LoadInt32(&calls))

		require.Equal(t, 50000, got.Amount)
		require.Equal(t, "UGX", got.Currency)
		require.Equal(t, "256700000001", got.Phone)
		require.True(t, strings.HasPrefix(got.TxRef, "DONATION-"))
	})

	t.Run("two identical calls issue two requests", func(t *testing.T) {
		var calls int32
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			atomic.AddInt32(&calls, 1)
			json.NewEncoder(w).Encode(Response{Success: true})
		}))
		defer server.Close()

		client := NewAirtel(server.URL, "UGX", 5*time.Second)
		req := Request{Amount: 10000, Phone: "0700000000"}

		_, err := client.Initiate(context.Background(), req)
		require.NoError(t, err)
		_, err = client.Initiate(context.Background(), req)
		require.NoError(t, err)

		require.Equal(t, int32(2), atomic.LoadInt32(&calls))
	})

	t.Run("business rejection carries the provider message", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			json.NewEncoder(w).Encode(Response{Success: false, Message: "Insufficient funds"})
		}))
		defer server.Close()

		client := NewMTN(server.URL, "UGX", 5*time.Second)
		resp, err := client.Initiate(context.Background(), Request{Amount: 10000, Phone: "0700000000"})

		require.Nil(t, resp)
		var rejected *RejectedError
		require.ErrorAs(t, err, &rejected)
		require.Equal(t, "Insufficient funds", rejected.Message)
		require.Equal(t, "mtn", rejected.Provider)
	})

	t.Run("non-2xx status is a transport error, not a rejection", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()

		client := NewMTN(server.URL, "UGX", 5*time.Second)
		_, err := client.Initiate(context.Background(), Request{Amount: 10000, Phone: "0700000000"})

		require.Error(t, err)
		var rejected *RejectedError
		require.False(t, errors.As(err, &rejected))
		require.Contains(t, err.Error(), "unexpected status 500")
	})

	t.Run("malformed JSON is a transport error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("not json"))
		}))
		defer server.Close()

		client := NewMTN(server.URL, "UGX", 5*time.Second)
		_, err := client.Initiate(context.Background(), Request{Amount: 10000, Phone: "0700000000"})

		require.Error(t, err)
		var rejected *RejectedError
		require.False(t, errors.As(err, &rejected))
	})

	t.Run("network failure surfaces as an error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		server.Close()

		client := NewMTN(server.URL, "UGX", time.Second)
		_, err := client.Initiate(context.Background(), Request{Amount: 10000, Phone: "0700000000"})

		require.Error(t, err)
	})

	t.Run("cancelled context aborts the call", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			<-r.Context().Done()
		}))
		defer server.Close()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		client := NewMTN(server.URL, "UGX", 5*time.Second)
		_, err := client.Initiate(ctx, Request{Amount: 10000, Phone: "0700000000"})

		require.Error(t, err)
	})
}

func TestFlutterwaveInitiate(t *testing.T) {
	t.Run("sends email and name, passes provider fields through", func(t *testing.T) {
		var got flutterwaveRequest
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
			json.NewEncoder(w).Encode(Response{
				Success:     true,
				Reference:   "FLW-123",
				RedirectURL: "https://checkout.example/FLW-123",
			})
		}))
		defer server.Close()

		client := NewFlutterwave(server.URL, "UGX", 5*time.Second)
		resp, err := client.Initiate(context.Background(), Request{
			Amount: 100000,
			Email:  "donor@example.com",
			Name:   "Jane Donor",
		})

		require.NoError(t, err)
		require.Equal(t, "FLW-123", resp.Reference)
		require.Equal(t, "https://checkout.example/FLW-123", resp.RedirectURL)

		require.Equal(t, 100000, got.Amount)
		require.Equal(t, "donor@example.com", got.Email)
		require.Equal(t, "Jane Donor", got.Name)
		require.True(t, strings.HasPrefix(got.TxRef, "DONATION-"))
	})

	t.Run("falls back to our tx_ref when the provider returns none", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			json.NewEncoder(w).Encode(Response{Success: true})
		}))
		defer server.Close()

		client := NewFlutterwave(server.URL, "UGX", 5*time.Second)
		resp, err := client.Initiate(context.Background(), Request{Amount: 10000, Email: "d@e.com", Name: "D"})

		require.NoError(t, err)
		require.True(t, strings.HasPrefix(resp.Reference, "DONATION-"))
	})
}
