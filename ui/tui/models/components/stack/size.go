// Copyright (c) 2026 Keymaster Team
// formkit - reusable form inputs for Bubble Tea
// This source code is licensed under the MIT license found in the LICENSE file.
package stack

import (
	"cmp"
	"math"
	"slices"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/toeirei/formkit/ui/tui/util"
	"github.com/toeirei/formkit/util/slicest"
)

// SizeConfig decides how much of the stack's main axis an item gets. Items
// are sized in ascending Priority order, each from what is left.
type SizeConfig interface {
	Priority() int
	Calculate(model util.Model, remainingSize int, totalSize int) int
}

type staticSize struct {
	Size int
}

type variableSize struct {
	Weight      int
	totalWeight int
}

func StaticSize(size int) SizeConfig     { return &staticSize{Size: size} }
func VariableSize(weight int) SizeConfig { return &variableSize{Weight: weight} }

// SizeFunc sizes an item by asking fn, at the given priority.
func SizeFunc(priority int, fn func(model util.Model, remainingSize, totalSize int) int) SizeConfig {
	return &funcSize{priority: priority, fn: fn}
}

type funcSize struct {
	priority int
	fn       func(util.Model, int, int) int
}

func (sc *staticSize) Priority() int   { return 0 }
func (sc *variableSize) Priority() int { return math.MaxInt }
func (sc *funcSize) Priority() int     { return sc.priority }

func (sc *staticSize) Calculate(_ util.Model, _ int, _ int) int {
	return sc.Size
}

func (sc *variableSize) Calculate(_ util.Model, remainingSize int, _ int) int {
	if sc.totalWeight == 0 {
		return remainingSize
	}
	// remainingSize * (Weight / totalWeight) without float rounding
	return (remainingSize * sc.Weight) / sc.totalWeight
}

func (sc *funcSize) Calculate(model util.Model, remainingSize int, totalSize int) int {
	return sc.fn(model, remainingSize, totalSize)
}

func (s *Model) calculateItemSizes() {
	var totalSize int
	if s.Orientation == Horizontal {
		totalSize = s.size.Width
	} else {
		totalSize = s.size.Height
	}

	remainingSize := max(0, totalSize-(s.Gap*(len(s.items)-1)))

	sortedItems := make([]*Item, len(s.items))
	for i := range s.items {
		sortedItems[i] = &s.items[i]
	}
	slices.SortStableFunc(sortedItems, func(item1, item2 *Item) int {
		return cmp.Compare(item1.SizeConfig.Priority(), item2.SizeConfig.Priority())
	})

	totalWeight := slicest.ReduceD(s.items, 0, func(item Item, total int) int {
		if sizeConfigV, ok := item.SizeConfig.(*variableSize); ok {
			return total + sizeConfigV.Weight
		}
		return total
	})

	for _, item := range sortedItems {
		sizeConfigV, ok := item.SizeConfig.(*variableSize)
		if ok {
			sizeConfigV.totalWeight = totalWeight
		}

		size := util.Clamp(0, item.SizeConfig.Calculate(item.Model, remainingSize, totalSize), remainingSize)

		if ok {
			totalWeight -= sizeConfigV.Weight
		}

		remainingSize -= size
		item.oldSize = item.size
		item.size = size
	}
}

func (s *Model) updateResizedItems(force bool) []tea.Cmd {
	var cmds []tea.Cmd
	for _, item := range s.items {
		if force || item.size != item.oldSize {
			var msg tea.WindowSizeMsg
			if s.Orientation == Horizontal {
				msg.Width = item.size
				msg.Height = s.size.Height
			} else {
				msg.Width = s.size.Width
				msg.Height = item.size
			}
			cmds = append(cmds, item.Model.Update(msg))
		}
	}
	return cmds
}
