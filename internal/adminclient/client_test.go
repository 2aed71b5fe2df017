package adminclient

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/projectkrs/krs/internal/server/http/dto"
)

func newServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/get_orders", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id":2,"order_code":"BBBBB","name":"Bee","city":"","city_auto":"Pune","total":5,"timestamp":"2024-01-02 03:04:05","selfie_filename":null},
			{"id":1,"order_code":"AAAAA","name":"Ay","city":"Delhi","total":19.99,"timestamp":"2024-01-01 00:00:00","selfie_filename":"1_a.jpg"}]`))
	})
	mux.HandleFunc("/get_order", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if r.URL.Query().Get("order_id") == "AAAAA" {
			_, _ = w.Write([]byte(`{"ok":true,"order":{"id":1,"order_code":"AAAAA","name":"Ay","total":19.99,"lat":28.61}}`))
			return
		}
		_, _ = w.Write([]byte(`{"ok":false,"message":"Not found"}`))
	})
	mux.HandleFunc("/broken/get_orders", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func TestNewRejectsRelativeURL(t *testing.T) {
	if _, err := New("localhost:8000", time.Second); err == nil {
		t.Fatal("expected error for relative url")
	}
}

func TestClientOrders(t *testing.T) {
	server := newServer(t)
	client, err := New(server.URL, time.Second)
	if err != nil {
		t.Fatalf("new client: %v", err)
	}

	orders, err := client.Orders(context.Background())
	if err != nil {
		t.Fatalf("orders: %v", err)
	}
	if len(orders) != 2 || orders[0].OrderCode != "BBBBB" || orders[1].SelfieFilename == nil {
		t.Fatalf("unexpected orders %+v", orders)
	}
}

func TestClientOrder(t *testing.T) {
	server := newServer(t)
	client, _ := New(server.URL, time.Second)

	order, err := client.Order(context.Background(), "AAAAA")
	if err != nil {
		t.Fatalf("order: %v", err)
	}
	if order.Name != "Ay" || order.Lat == nil || *order.Lat != 28.61 {
		t.Fatalf("unexpected order %+v", order)
	}

	if _, err := client.Order(context.Background(), "ZZZZZ"); !errors.Is(err, ErrOrderNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestClientServerError(t *testing.T) {
	server := newServer(t)
	client, _ := New(server.URL+"/broken", time.Second)
	if _, err := client.Orders(context.Background()); err == nil || !strings.Contains(err.Error(), "500") {
		t.Fatalf("expected status error, got %v", err)
	}
}

func TestRenderOrders(t *testing.T) {
	selfie := "1_a.jpg"
	cityAuto := "Pune"
	var buf bytes.Buffer
	err := RenderOrders(&buf, []dto.OrderResponse{
		{ID: 2, OrderCode: "BBBBB", Name: "Bee", CityAuto: &cityAuto, Total: 5},
		{ID: 1, OrderCode: "AAAAA", Name: "Ay", City: "Delhi", Total: 19.99, SelfieFilename: &selfie},
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"BBBBB", "Pune", "5.00", "AAAAA", "Delhi", "19.99", "1_a.jpg"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output:\n%s", want, out)
		}
	}
	if strings.Index(out, "BBBBB") > strings.Index(out, "AAAAA") {
		t.Fatal("expected service order to be preserved")
	}
}

func TestRenderOrder(t *testing.T) {
	lat := 28.61
	var buf bytes.Buffer
	if err := RenderOrder(&buf, dto.OrderResponse{ID: 1, OrderCode: "AAAAA", Items: `[{"sku":1}]`, Lat: &lat}); err != nil {
		t.Fatalf("render: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"order_code", "AAAAA", `[{"sku":1}]`, "28.61", "country_auto"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output:\n%s", want, out)
		}
	}
}
