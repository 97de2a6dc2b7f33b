package mocks

import "github.com/user/gifmux/pkg/ports"

// Progress is a mock implementation of ports.Progress.
type Progress struct {
	Started    []string
	Totals     []int
	Increments int
	Finished   int
}

func (m *Progress) Start(total int, description string) {
	m.Started = append(m.Started, description)
	m.Totals = append(m.Totals, total)
}

func (m *Progress) Increment() {
	m.Increments++
}

func (m *Progress) Finish() {
	m.Finished++
}

var _ ports.Progress = (*Progress)(nil)
