package ast

import (
	"strconv"
)

// Value 指令参数，可以是字面量或 %name 形式的变量
type Value struct {
	Value string // 原始值，变量不含 % 前缀
	IsVar bool   // 是否为变量
	Line  int    // 行号
}

func (value Value) String() string {
	if value.IsVar {
		return tokenVarPrefix + value.Value
	}
	return value.Value
}

// Resolve 变量替换为 .define 的值
func (value Value) Resolve(defines map[string]string) (string, error) {
	if !value.IsVar {
		return value.Value, nil
	}
	v, ok := defines[value.Value]
	if !ok {
		return "", errorAtLine(value.Line, "undefined variable %%%s", value.Value)
	}
	return v, nil
}

// Float64 解析为浮点数
func (value Value) Float64(defines map[string]string) (float64, error) {
	s, err := value.Resolve(defines)
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, errorAtLine(value.Line, "malformed number %q", s)
	}
	return v, nil
}
