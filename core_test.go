// SPDX-License-Identifier: Unlicense OR MIT

package kas

import "testing"

func TestCoreDataContains(t *testing.T) {
	core := CoreData{ID: 5, Span: 3}
	for id, want := range map[WidgetID]bool{
		0: false, 4: false, 5: true, 6: true, 7: true, 8: false,
	} {
		if got := core.Contains(id); got != want {
			t.Errorf("Contains(%v) = %v, want %v", id, got, want)
		}
	}

	var unconfigured CoreData
	if unconfigured.Contains(0) || unconfigured.Contains(1) {
		t.Errorf("unconfigured core contains ids")
	}
}

func TestActionString(t *testing.T) {
	tests := []struct {
		action Action
		want   string
	}{
		{0, "None"},
		{Redraw, "Redraw"},
		{Redraw | Close, "Redraw|Close"},
		{RegionMoved | Reconfigure | CloseAll, "RegionMoved|Reconfigure|CloseAll"},
	}
	for _, test := range tests {
		if got := test.action.String(); got != test.want {
			t.Errorf("(%b).String() = %q, want %q", uint8(test.action), got, test.want)
		}
	}
}

func TestWidgetID(t *testing.T) {
	if NoID.IsValid() {
		t.Errorf("NoID reported valid")
	}
	if id := WidgetID(7); !id.IsValid() || id.String() != "#7" {
		t.Errorf("WidgetID(7): valid %v, string %q", id.IsValid(), id.String())
	}
}
