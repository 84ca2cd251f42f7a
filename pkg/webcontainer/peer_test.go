package webcontainer

import (
	"context"
	"testing"

	"github.com/panekit/panekit/pkg/app"
	"github.com/panekit/panekit/pkg/service"
)

func countLibrary(libs []string, id string) int {
	n := 0
	for _, l := range libs {
		if l == id {
			n++
		}
	}
	return n
}

func TestContentPanePeer(t *testing.T) {
	peer := &ContentPanePeer{}

	if peer.ComponentType() != app.TypeContentPane {
		t.Errorf("ComponentType() = %q, want %q", peer.ComponentType(), app.TypeContentPane)
	}

	ctx := NewOutputContext(context.Background(), nil)
	peer.Init(ctx)

	if got := countLibrary(ctx.ServerMessage().Libraries(), "Echo.ContentPane"); got != 1 {
		t.Errorf("library Echo.ContentPane added %d times, want 1", got)
	}
}

func TestPeerComponentTypeStable(t *testing.T) {
	tests := []struct {
		name string
		new  func() ComponentSynchronizePeer
		want app.ComponentType
	}{
		{"content pane", func() ComponentSynchronizePeer { return &ContentPanePeer{} }, app.TypeContentPane},
		{"row", func() ComponentSynchronizePeer { return &RowPeer{} }, app.TypeRow},
		{"column", func() ComponentSynchronizePeer { return &ColumnPeer{} }, app.TypeColumn},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, b := tt.new(), tt.new()
			for i := 0; i < 3; i++ {
				if a.ComponentType() != tt.want || b.ComponentType() != tt.want {
					t.Fatalf("ComponentType() = %q/%q, want %q", a.ComponentType(), b.ComponentType(), tt.want)
				}
			}
		})
	}
}

func TestPeerInitTwiceKeepsDuplicates(t *testing.T) {
	peer := &RowPeer{}
	ctx := NewOutputContext(context.Background(), nil)
	peer.Init(ctx)
	peer.Init(ctx)

	if got := countLibrary(ctx.ServerMessage().Libraries(), "Echo.Row"); got != 2 {
		t.Errorf("library Echo.Row added %d times, want 2", got)
	}
}

func TestPeerInitOnlyTouchesContext(t *testing.T) {
	reg := service.NewRegistry()
	peer := &ColumnPeer{}

	a := NewOutputContext(context.Background(), nil)
	b := NewOutputContext(context.Background(), nil)
	peer.Init(a)

	if len(b.ServerMessage().Libraries()) != 0 {
		t.Error("Init should not affect other contexts")
	}
	if reg.Len() != 0 {
		t.Error("Init should not register services")
	}
}

func TestPeerServices(t *testing.T) {
	for _, peer := range DefaultPeers() {
		services := peer.Services()
		if len(services) != 2 {
			t.Fatalf("%s: Services() has %d entries, want 2", peer.ComponentType(), len(services))
		}
		if services[0].ID() != CoreService.ID() {
			t.Errorf("%s: first service = %q, want core runtime", peer.ComponentType(), services[0].ID())
		}

		ctx := NewOutputContext(context.Background(), nil)
		peer.Init(ctx)
		if libs := ctx.ServerMessage().Libraries(); len(libs) != 1 || libs[0] != services[1].ID() {
			t.Errorf("%s: Init added %v, want [%s]", peer.ComponentType(), libs, services[1].ID())
		}

		for _, svc := range services {
			data, err := svc.Load(context.Background())
			if err != nil {
				t.Errorf("%s: Load(%s) error = %v", peer.ComponentType(), svc.ID(), err)
			}
			if len(data) == 0 {
				t.Errorf("%s: Load(%s) returned empty payload", peer.ComponentType(), svc.ID())
			}
		}
	}
}

func TestAbstractPeerOutputProperty(t *testing.T) {
	row := app.NewRow()
	row.SetCellSpacing(app.Px(100))
	row.SetProperty("custom", 42)

	var peer AbstractPeer
	ctx := NewOutputContext(context.Background(), nil)

	if v, ok := peer.OutputProperty(ctx, row, app.PropertyCellSpacing); !ok || v != "100px" {
		t.Errorf("OutputProperty(cellSpacing) = %v, %v, want 100px", v, ok)
	}
	if v, ok := peer.OutputProperty(ctx, row, "custom"); !ok || v != 42 {
		t.Errorf("OutputProperty(custom) = %v, %v, want 42", v, ok)
	}
	if _, ok := peer.OutputProperty(ctx, row, app.PropertyBorder); ok {
		t.Error("OutputProperty should skip unset properties")
	}
}
