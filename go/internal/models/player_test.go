package models

import (
	"reflect"
	"testing"
)

func TestValidPositions(t *testing.T) {
	tests := []struct {
		name       string
		discipline Discipline
		want       []Position
	}{
		{"futsal has its own outfield roles", DisciplineFutsal,
			[]Position{PositionGoalkeeper, PositionFixo, PositionAla, PositionPivot}},
		{"football", DisciplineFootball,
			[]Position{PositionGoalkeeper, PositionDefender, PositionMidfielder, PositionForward}},
		{"seven a side shares football roles", DisciplineSevenASide,
			[]Position{PositionGoalkeeper, PositionDefender, PositionMidfielder, PositionForward}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ValidPositions(tt.discipline)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ValidPositions(%s) = %v, want %v", tt.discipline, got, tt.want)
			}
		})
	}
}
