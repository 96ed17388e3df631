// Package ast 参数文件的语法树。
// 文件按行解析，每行一条以 "." 开头的指令，支持 #、// 与 /* */ 注释。
package ast

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// 指令与注释标记
const (
	TokenAnchor            = ".anchor"   // .anchor <dimension> <value>
	TokenValue             = ".value"    // .value <parameter> <value>
	TokenGeometry          = ".geometry" // .geometry cone|annulus
	TokenDefine            = ".define"   // .define <name> <value>, referenced as %name
	tokenVarPrefix         = "%"
	tokenCommentHash       = "#"
	tokenCommentLine       = "//"
	tokenCommentBlockStart = "/*"
	tokenCommentBlockEnd   = "*/"
)

// arity number of arguments of each directive
var arity = map[string]int{
	TokenAnchor:   2,
	TokenValue:    2,
	TokenGeometry: 1,
	TokenDefine:   2,
}

// DirectiveNode 指令节点
type DirectiveNode struct {
	Command string  // 指令，如 ".value"
	Args    []Value // 参数
	Line    int     // 行号
}

// CommentNode 注释节点
type CommentNode struct {
	Text string // 注释文本
	Line int    // 行号
}

// ParseTree 解析树
type ParseTree struct {
	Directives   []*DirectiveNode  // 指令，按出现顺序
	CommentNodes []*CommentNode    // 注释列表
	Defines      map[string]string // .define 定义的变量
}

// String 摘要
func (parseTree *ParseTree) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d directives, %d defines, %d comments", len(parseTree.Directives), len(parseTree.Defines), len(parseTree.CommentNodes))
	for _, d := range parseTree.Directives {
		fmt.Fprintf(&b, "\n  line %d: %s", d.Line, d.Command)
		for _, a := range d.Args {
			b.WriteString(" " + a.String())
		}
	}
	return b.String()
}

// NewParseTree 按行解析参数文件
func NewParseTree(r io.Reader) (*ParseTree, error) {
	scanner := bufio.NewScanner(r)
	parseTree := &ParseTree{Defines: map[string]string{}}
	lineNum := 0
	inBlock := false
	for scanner.Scan() {
		lineNum++
		var code string
		code, inBlock = parseComments(scanner.Text(), lineNum, inBlock, parseTree)
		fields := strings.Fields(code)
		if len(fields) == 0 {
			continue
		}
		if err := parseDirective(fields, lineNum, parseTree); err != nil {
			return nil, err
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read deck: %w", err)
	}
	if inBlock {
		return nil, errorAtLine(lineNum, "unterminated block comment")
	}
	return parseTree, nil
}

// parseComments 去掉一行中的注释，返回剩余代码和是否仍在块注释内
func parseComments(line string, lineNum int, inBlock bool, parseTree *ParseTree) (string, bool) {
	var code strings.Builder
	for len(line) > 0 {
		if inBlock {
			end := strings.Index(line, tokenCommentBlockEnd)
			if end < 0 {
				parseTree.addComment(line, lineNum)
				return code.String(), true
			}
			parseTree.addComment(line[:end], lineNum)
			line = line[end+len(tokenCommentBlockEnd):]
			inBlock = false
			code.WriteString(" ")
			continue
		}
		hash := strings.Index(line, tokenCommentHash)
		slash := strings.Index(line, tokenCommentLine)
		block := strings.Index(line, tokenCommentBlockStart)
		first := firstIndex(hash, slash, block)
		if first < 0 {
			code.WriteString(line)
			break
		}
		code.WriteString(line[:first])
		switch first {
		case block:
			line = line[first+len(tokenCommentBlockStart):]
			inBlock = true
		case slash:
			parseTree.addComment(line[first+len(tokenCommentLine):], lineNum)
			line = ""
		default:
			parseTree.addComment(line[first+len(tokenCommentHash):], lineNum)
			line = ""
		}
	}
	return code.String(), inBlock
}

func (parseTree *ParseTree) addComment(text string, lineNum int) {
	if text = strings.TrimSpace(text); text == "" {
		return
	}
	parseTree.CommentNodes = append(parseTree.CommentNodes, &CommentNode{Text: text, Line: lineNum})
}

// parseDirective 解析一条指令
func parseDirective(fields []string, lineNum int, parseTree *ParseTree) error {
	command := strings.ToLower(fields[0])
	n, ok := arity[command]
	if !ok {
		return errorAtLine(lineNum, "unknown directive %q", fields[0])
	}
	if len(fields)-1 != n {
		return errorAtLine(lineNum, "%s takes %d arguments, got %d", command, n, len(fields)-1)
	}
	if command == TokenDefine {
		parseTree.Defines[fields[1]] = fields[2]
		return nil
	}
	node := &DirectiveNode{Command: command, Line: lineNum}
	for _, f := range fields[1:] {
		v := Value{Value: f, Line: lineNum}
		if strings.HasPrefix(f, tokenVarPrefix) && len(f) > 1 {
			v.Value, v.IsVar = f[1:], true
		}
		node.Args = append(node.Args, v)
	}
	parseTree.Directives = append(parseTree.Directives, node)
	return nil
}

// errorAtLine 生成带行号的错误信息
func errorAtLine(lineNum int, format string, args ...any) error {
	return fmt.Errorf("line %d: %s", lineNum, fmt.Sprintf(format, args...))
}

// firstIndex 最小的非负下标，全部为负时返回 -1
func firstIndex(idx ...int) int {
	first := -1
	for _, i := range idx {
		if i >= 0 && (first < 0 || i < first) {
			first = i
		}
	}
	return first
}
