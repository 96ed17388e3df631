// Package load 读取参数文件并生成外流模型的输入。
package load

import (
	"fmt"
	"io"
	"strings"

	"outflow/load/ast"
	"outflow/norm"
	"outflow/types"
	"outflow/ufo"
)

// LoadString 从字符串读取参数文件
func LoadString(s string) (ufo.Params, map[string]float64, error) {
	return Deck(strings.NewReader(s))
}

// Deck 读取参数文件。
//
// 参数:
//   - r: 参数文件内容
//
// 返回:
//   - 以 ufo.DefaultParams 为基础、被 .value 与 .geometry 修改后的参数
//   - 归一化锚点；文件中出现任何 .anchor 时只使用文件中的锚点，否则为 ufo.DefaultAnchors
//   - 带行号的错误
func Deck(r io.Reader) (ufo.Params, map[string]float64, error) {
	params := ufo.DefaultParams()
	parseTree, err := ast.NewParseTree(r)
	if err != nil {
		return params, nil, err
	}
	anchors := map[string]float64{}
	for _, d := range parseTree.Directives {
		switch d.Command {
		case ast.TokenAnchor:
			err = setAnchor(anchors, d, parseTree.Defines)
		case ast.TokenValue:
			err = setValue(&params, d, parseTree.Defines)
		case ast.TokenGeometry:
			err = setGeometry(&params, d, parseTree.Defines)
		}
		if err != nil {
			return params, nil, err
		}
	}
	if len(anchors) == 0 {
		anchors = ufo.DefaultAnchors()
	}
	return params, anchors, nil
}

// setAnchor .anchor <dimension> <value>
func setAnchor(anchors map[string]float64, d *ast.DirectiveNode, defines map[string]string) error {
	id, err := d.Args[0].Resolve(defines)
	if err != nil {
		return err
	}
	if _, ok := norm.Lookup(id); !ok {
		return fmt.Errorf("line %d: %w", d.Line, &types.UnknownDimensionError{ID: id})
	}
	if _, ok := anchors[id]; ok {
		return fmt.Errorf("line %d: %w", d.Line, types.Configf("anchor %s given twice", id))
	}
	v, err := d.Args[1].Float64(defines)
	if err != nil {
		return err
	}
	anchors[id] = v
	return nil
}

// setValue .value <parameter> <value>
func setValue(params *ufo.Params, d *ast.DirectiveNode, defines map[string]string) error {
	name, err := d.Args[0].Resolve(defines)
	if err != nil {
		return err
	}
	v, err := d.Args[1].Float64(defines)
	if err != nil {
		return err
	}
	if err := ufo.SetParam(params, name, v); err != nil {
		return fmt.Errorf("line %d: %w", d.Line, err)
	}
	return nil
}

// setGeometry .geometry cone|annulus
func setGeometry(params *ufo.Params, d *ast.DirectiveNode, defines map[string]string) error {
	name, err := d.Args[0].Resolve(defines)
	if err != nil {
		return err
	}
	if _, err := ufo.ParseGeometry(name); err != nil {
		return fmt.Errorf("line %d: %w", d.Line, err)
	}
	params.Geometry = name
	return nil
}
