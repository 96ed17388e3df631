package load

import (
	"errors"
	"strings"
	"testing"

	"outflow/types"
	"outflow/ufo"
)

func TestDeck(t *testing.T) {
	params, anchors, err := LoadString(`
// slower, wider outflow through a ring
.value speed 0.01
.value rufo 1e-2
.value wufo 1e-2
.value angle 60
.geometry annulus
`)
	if err != nil {
		t.Fatalf("读取失败 %s", err)
	}
	want := ufo.DefaultParams()
	want.Speed, want.Radius, want.Width, want.Angle, want.Geometry = 0.01, 1e-2, 1e-2, 60, "annulus"
	if params != want {
		t.Errorf("参数不正确:\n期望 %+v\n实际 %+v", want, params)
	}
	def := ufo.DefaultAnchors()
	if len(anchors) != len(def) {
		t.Fatalf("锚点数量不正确: %v", anchors)
	}
	for k, v := range def {
		if anchors[k] != v {
			t.Errorf("锚点 %s: 期望 %g, 实际 %g", k, v, anchors[k])
		}
	}
	if _, err := ufo.New(params, anchors); err != nil {
		t.Errorf("模型创建失败 %s", err)
	}
}

func TestDeckAnchorsReplaceDefaults(t *testing.T) {
	_, anchors, err := LoadString(`
.define pc 3.0856775814913673e18
.anchor x %pc
.anchor t 3.15576e7
.anchor m 1.98892e33
.anchor curr 1
.anchor temp 1
`)
	if err != nil {
		t.Fatalf("读取失败 %s", err)
	}
	if len(anchors) != 5 || anchors["x"] != 3.0856775814913673e18 || anchors["m"] != 1.98892e33 {
		t.Errorf("锚点不正确: %v", anchors)
	}
	if _, ok := anchors["dens"]; ok {
		t.Errorf("默认锚点未被替换: %v", anchors)
	}
}

func TestDeckDefinedNames(t *testing.T) {
	params, anchors, err := LoadString(`
.define p speed
.define d x
.value %p 0.05
.anchor %d 1
.anchor t 1
.anchor m 1
.anchor curr 1
.anchor temp 1
`)
	if err != nil {
		t.Fatalf("读取失败 %s", err)
	}
	if params.Speed != 0.05 {
		t.Errorf("速度不正确: 期望 0.05, 实际 %g", params.Speed)
	}
	if v, ok := anchors["x"]; !ok || v != 1 {
		t.Errorf("锚点 x 不正确: %v", anchors)
	}
	if _, ok := anchors["d"]; ok {
		t.Errorf("变量名未被替换: %v", anchors)
	}
}

func TestDeckErrors(t *testing.T) {
	testCases := []struct {
		name string
		deck string
		line string
		is   error
	}{
		{name: "unknown parameter", deck: ".value colour 1", line: "line 1", is: types.ErrConfig},
		{name: "unknown dimension", deck: "\n.anchor furlong 2", line: "line 2", is: types.ErrUnknownDimension},
		{name: "unknown geometry", deck: ".geometry sphere", line: "line 1", is: types.ErrUnknownMode},
		{name: "malformed number", deck: ".value speed fast", line: "line 1"},
		{name: "undefined variable", deck: ".value speed %fast", line: "line 1"},
		{name: "duplicate anchor", deck: ".anchor x 1\n.anchor x 2", line: "line 2", is: types.ErrConfig},
		{name: "duplicate defined anchor", deck: ".define d x\n.anchor x 1\n.anchor %d 2", line: "line 3", is: types.ErrConfig},
		{name: "undefined name", deck: ".value %p 1", line: "line 1"},
		{name: "unknown directive", deck: ".solve", line: "line 1"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := LoadString(tc.deck)
			if err == nil {
				t.Fatalf("期望错误")
			}
			if !strings.Contains(err.Error(), tc.line) {
				t.Errorf("错误缺少行号 %q: %s", tc.line, err)
			}
			if tc.is != nil && !errors.Is(err, tc.is) {
				t.Errorf("错误类型不正确: %s", err)
			}
		})
	}
}
