package prompt

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/goliatone/go-fragment/pkg/render"
)

// Mode selects the shape of the collected list.
type Mode int

const (
	// ModeList collects a flat list of items.
	ModeList Mode = iota
	// ModeListInList collects groups of items.
	ModeListInList
)

// Collect asks for a name and items. Items are read until an empty answer;
// in ModeListInList each finished group is followed by a confirmation for
// another one.
func Collect(ctx context.Context, driver Driver, mode Mode) (render.Context, error) {
	if driver == nil {
		return nil, errors.New("prompt: driver is required")
	}

	name, err := driver.Input(ctx, InputConfig{
		Message: "Name:",
		Help:    "Rendered before the list, HTML escaped.",
	})
	if err != nil {
		return nil, err
	}

	switch mode {
	case ModeList:
		items, err := collectItems(ctx, driver, "Item")
		if err != nil {
			return nil, err
		}
		return render.Context{render.KeyName: name, render.KeyList: items}, nil
	case ModeListInList:
		var groups []any
		for {
			if err := driver.Info(ctx, fmt.Sprintf("Group %d (empty answer ends the group)", len(groups)+1)); err != nil {
				return nil, err
			}
			items, err := collectItems(ctx, driver, fmt.Sprintf("Group %d item", len(groups)+1))
			if err != nil {
				return nil, err
			}
			groups = append(groups, items)

			more, err := driver.Confirm(ctx, ConfirmConfig{Message: "Add another group?"})
			if err != nil {
				return nil, err
			}
			if !more {
				break
			}
		}
		return render.Context{render.KeyName: name, render.KeyList: groups}, nil
	default:
		return nil, fmt.Errorf("prompt: unknown mode %d", mode)
	}
}

func collectItems(ctx context.Context, driver Driver, label string) ([]any, error) {
	items := []any{}
	for {
		answer, err := driver.Input(ctx, InputConfig{
			Message: fmt.Sprintf("%s %d:", label, len(items)+1),
			Help:    "Leave empty to finish.",
		})
		if err != nil {
			return nil, err
		}
		if strings.TrimSpace(answer) == "" {
			return items, nil
		}
		items = append(items, answer)
	}
}
