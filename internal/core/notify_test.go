package core

import "testing"

func TestNotificationQueuePushAndAge(t *testing.T) {
	var q NotificationQueue

	q.Push("short", 1, ToneInfo)
	q.Push("long", 3, ToneGood)
	if q.Len() != 2 {
		t.Fatalf("Expected 2 notifications, got %d", q.Len())
	}

	q.Age()
	items := q.Items()
	if len(items) != 1 {
		t.Fatalf("Expected the short toast to expire, got %d items", len(items))
	}
	if items[0].Text != "long" || items[0].RemainingTicks != 2 {
		t.Errorf("Expected long/2, got %q/%d", items[0].Text, items[0].RemainingTicks)
	}

	q.Age()
	q.Age()
	if q.Len() != 0 {
		t.Errorf("Expected an empty queue, got %d", q.Len())
	}
}

func TestNotificationQueuePreservesOrder(t *testing.T) {
	var q NotificationQueue

	q.Push("first", 10, ToneInfo)
	q.Push("second", 5, ToneBad)
	q.Push("third", 10, ToneGood)

	q.Age()
	items := q.Items()
	if len(items) != 3 {
		t.Fatalf("Expected 3 items, got %d", len(items))
	}
	if items[0].Text != "first" || items[1].Text != "second" || items[2].Text != "third" {
		t.Errorf("Order not preserved: %v", items)
	}

	// Expire the middle one; the others keep their relative order.
	for i := 0; i < 4; i++ {
		q.Age()
	}
	items = q.Items()
	if len(items) != 2 {
		t.Fatalf("Expected 2 items, got %d", len(items))
	}
	if items[0].Text != "first" || items[1].Text != "third" {
		t.Errorf("Order not preserved after expiry: %v", items)
	}
}

func TestNotificationQueueClear(t *testing.T) {
	var q NotificationQueue
	q.Push("a", 10, ToneInfo)
	q.Push("b", 10, ToneInfo)
	q.Clear()
	if q.Len() != 0 {
		t.Errorf("Expected an empty queue after Clear, got %d", q.Len())
	}
}

func TestCommandKindString(t *testing.T) {
	kinds := map[CommandKind]string{
		CmdNone:           "None",
		CmdClick:          "Click",
		CmdBuyBuilding:    "BuyBuilding",
		CmdBuyMeta:        "BuyMeta",
		CmdUpgradeKPI:     "UpgradeKPI",
		CmdBuyAutoClicker: "BuyAutoClicker",
		CmdPrestige:       "Prestige",
		CmdToggleMetaShop: "ToggleMetaShop",
	}
	for kind, want := range kinds {
		if got := kind.String(); got != want {
			t.Errorf("Expected %q, got %q", want, got)
		}
	}
}
