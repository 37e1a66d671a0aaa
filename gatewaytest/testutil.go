package gatewaytest

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v76"

	"github.com/jt-helsinki/stripe-connect/providers"
	stripeprovider "github.com/jt-helsinki/stripe-connect/providers/stripe"
)

// Call records one request the stub provider received
type Call struct {
	Method string
	Path   string
	Header http.Header
	Form   url.Values
}

// Server is a stub Stripe API used to exercise the gateway without network
// access. Handlers are keyed by "METHOD path"; unhandled requests get a 404
// with a Stripe-shaped error body.
type Server struct {
	*httptest.Server
	mu       sync.Mutex
	calls    []Call
	handlers map[string]http.HandlerFunc
}

// NewServer starts a stub provider. The caller owns Close.
func NewServer() *Server {
	s := &Server{
		handlers: map[string]http.HandlerFunc{},
	}
	s.Server = httptest.NewServer(http.HandlerFunc(s.serve))
	return s
}

func (s *Server) serve(w http.ResponseWriter, r *http.Request) {
	_ = r.ParseForm()
	form := url.Values{}
	for k, v := range r.PostForm {
		form[k] = v
	}
	for k, v := range r.URL.Query() {
		form[k] = v
	}
	s.mu.Lock()
	s.calls = append(s.calls, Call{
		Method: r.Method,
		Path:   r.URL.Path,
		Header: r.Header.Clone(),
		Form:   form,
	})
	handler, ok := s.handlers[r.Method+" "+r.URL.Path]
	s.mu.Unlock()
	if !ok {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error":{"type":"invalid_request_error","message":"Unrecognized request URL"}}`))
		return
	}
	handler(w, r)
}

// Handle registers a handler for the given method and path
func (s *Server) Handle(method, path string, handler http.HandlerFunc) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.handlers[method+" "+path] = handler
}

// Respond registers a canned JSON response for the given method and path
func (s *Server) Respond(method, path string, status int, body string) {
	s.Handle(method, path, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	})
}

// Calls returns the recorded calls for the given method and path
func (s *Server) Calls(method, path string) []Call {
	s.mu.Lock()
	defer s.mu.Unlock()
	var calls []Call
	for _, c := range s.calls {
		if c.Method == method && c.Path == path {
			calls = append(calls, c)
		}
	}
	return calls
}

// Backends returns Stripe SDK backends pointed at the stub, with the SDK's own
// network retries disabled so the gateway's retry policy is the only one in play
func (s *Server) Backends() *stripe.Backends {
	backend := stripe.GetBackendWithConfig(stripe.APIBackend, &stripe.BackendConfig{
		URL:               stripe.String(s.URL),
		HTTPClient:        s.Client(),
		MaxNetworkRetries: stripe.Int64(0),
		LeveledLogger:     &stripe.LeveledLogger{Level: stripe.LevelError},
	})
	return &stripe.Backends{
		API:     backend,
		Connect: backend,
		Uploads: backend,
	}
}

// SleepRecorder records backoff sleeps instead of sleeping
type SleepRecorder struct {
	mu        sync.Mutex
	durations []time.Duration
}

// Sleep records d and returns immediately
func (r *SleepRecorder) Sleep(d time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.durations = append(r.durations, d)
}

// Durations returns the recorded sleeps in order
func (r *SleepRecorder) Durations() []time.Duration {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]time.Duration{}, r.durations...)
}

// TestFunc is a function that runs a test against a gateway pointed at the stub server
type TestFunc func(t *testing.T, ctx context.Context, gateway providers.PaymentGateway, server *Server)

// Fixture is a test fixture that runs a test against a gateway pointed at the stub server
type Fixture struct {
	Name        string
	Timeout     time.Duration
	Handlers    map[string]http.HandlerFunc
	GatewayOpts []stripeprovider.Option
	Sleeps      *SleepRecorder
	Test        TestFunc
}

// RunTest runs the test against a gateway pointed at the stub server
func (f *Fixture) RunTest(t *testing.T) {
	if f.Timeout == 0 {
		f.Timeout = time.Second * 10
	}
	ctx, cancel := context.WithTimeout(context.Background(), f.Timeout)
	defer cancel()
	server := NewServer()
	defer server.Close()
	for key, handler := range f.Handlers {
		method, path, ok := splitHandlerKey(key)
		require.True(t, ok, "bad handler key %q", key)
		server.Handle(method, path, handler)
	}
	if f.Sleeps == nil {
		f.Sleeps = &SleepRecorder{}
	}
	opts := append([]stripeprovider.Option{
		stripeprovider.WithBackends(server.Backends()),
		stripeprovider.WithHTTPClient(server.Client()),
		stripeprovider.WithSleep(f.Sleeps.Sleep),
	}, f.GatewayOpts...)
	gateway, err := stripeprovider.New(stripeprovider.Config{
		SecretKey:      "sk_test_gatewaytest",
		ClientID:       "ca_gatewaytest",
		AuthorizeURL:   server.URL + "/oauth/token",
		DeauthorizeURL: server.URL + "/oauth/deauthorize",
	}, opts...)
	require.NoError(t, err)
	t.Run(f.Name, func(t *testing.T) {
		f.Test(t, ctx, gateway, server)
	})
}

func splitHandlerKey(key string) (method string, path string, ok bool) {
	for i := 0; i < len(key); i++ {
		if key[i] == ' ' {
			return key[:i], key[i+1:], true
		}
	}
	return "", "", false
}
