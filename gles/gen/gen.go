// SPDX-License-Identifier: Unlicense OR MIT

// Command gen emits the dispatch table and call forwarders of the gles
// package from the declarative extension list below. Slot indices are
// assigned in declaration order; regenerating with an unchanged list
// reproduces identical files.
package main

import (
	"bytes"
	"fmt"
	"go/format"
	"log"
	"os"
	"strings"
)

type param struct {
	name string
	typ  string
}

type function struct {
	name   string // exported forwarder name
	sym    string // driver symbol
	ret    string // "" or "bool"
	params []param
}

type extension struct {
	name      string
	functions []function
}

var extensions = []extension{
	{
		name: "GL_NV_viewport_swizzle",
		functions: []function{
			{name: "ViewportSwizzleNV", sym: "glViewportSwizzleNV", params: []param{
				{"index", "uint32"}, {"swizzlex", "Enum"}, {"swizzley", "Enum"}, {"swizzlez", "Enum"}, {"swizzlew", "Enum"},
			}},
		},
	},
	{
		name: "GL_EXT_disjoint_timer_query",
		functions: []function{
			{name: "GenQueriesEXT", sym: "glGenQueriesEXT", params: []param{
				{"n", "int32"}, {"ids", "*uint32"},
			}},
			{name: "DeleteQueriesEXT", sym: "glDeleteQueriesEXT", params: []param{
				{"n", "int32"}, {"ids", "*uint32"},
			}},
			{name: "BeginQueryEXT", sym: "glBeginQueryEXT", params: []param{
				{"target", "Enum"}, {"id", "uint32"},
			}},
			{name: "EndQueryEXT", sym: "glEndQueryEXT", params: []param{
				{"target", "Enum"},
			}},
			{name: "QueryCounterEXT", sym: "glQueryCounterEXT", params: []param{
				{"id", "uint32"}, {"target", "Enum"},
			}},
			{name: "GetQueryObjectuivEXT", sym: "glGetQueryObjectuivEXT", params: []param{
				{"id", "uint32"}, {"pname", "Enum"}, {"params", "*uint32"},
			}},
		},
	},
	{
		name: "GL_OES_vertex_array_object",
		functions: []function{
			{name: "BindVertexArrayOES", sym: "glBindVertexArrayOES", params: []param{
				{"array", "uint32"},
			}},
			{name: "DeleteVertexArraysOES", sym: "glDeleteVertexArraysOES", params: []param{
				{"n", "int32"}, {"arrays", "*uint32"},
			}},
			{name: "GenVertexArraysOES", sym: "glGenVertexArraysOES", params: []param{
				{"n", "int32"}, {"arrays", "*uint32"},
			}},
			{name: "IsVertexArrayOES", sym: "glIsVertexArrayOES", ret: "bool", params: []param{
				{"array", "uint32"},
			}},
		},
	},
	{
		name: "GL_EXT_multisampled_render_to_texture",
		functions: []function{
			{name: "RenderbufferStorageMultisampleEXT", sym: "glRenderbufferStorageMultisampleEXT", params: []param{
				{"target", "Enum"}, {"samples", "int32"}, {"internalformat", "Enum"}, {"width", "int32"}, {"height", "int32"},
			}},
			{name: "FramebufferTexture2DMultisampleEXT", sym: "glFramebufferTexture2DMultisampleEXT", params: []param{
				{"target", "Enum"}, {"attachment", "Enum"}, {"textarget", "Enum"}, {"texture", "uint32"}, {"level", "int32"}, {"samples", "int32"},
			}},
		},
	},
	{
		name: "GL_NV_framebuffer_blit",
		functions: []function{
			{name: "BlitFramebufferNV", sym: "glBlitFramebufferNV", params: []param{
				{"srcX0", "int32"}, {"srcY0", "int32"}, {"srcX1", "int32"}, {"srcY1", "int32"},
				{"dstX0", "int32"}, {"dstY0", "int32"}, {"dstX1", "int32"}, {"dstY1", "int32"},
				{"mask", "uint32"}, {"filter", "Enum"},
			}},
		},
	},
	{
		name: "GL_NV_scissor_exclusive",
		functions: []function{
			{name: "ScissorExclusiveNV", sym: "glScissorExclusiveNV", params: []param{
				{"x", "int32"}, {"y", "int32"}, {"width", "int32"}, {"height", "int32"},
			}},
			{name: "ScissorExclusiveArrayvNV", sym: "glScissorExclusiveArrayvNV", params: []param{
				{"first", "uint32"}, {"count", "int32"}, {"v", "*int32"},
			}},
		},
	},
	{
		name: "GL_KHR_blend_equation_advanced",
		functions: []function{
			{name: "BlendBarrierKHR", sym: "glBlendBarrierKHR"},
		},
	},
	{
		name: "GL_EXT_buffer_storage",
		functions: []function{
			{name: "BufferStorageEXT", sym: "glBufferStorageEXT", params: []param{
				{"target", "Enum"}, {"size", "int"}, {"data", "unsafe.Pointer"}, {"flags", "uint32"},
			}},
		},
	},
	{
		name: "GL_EXT_clip_control",
		functions: []function{
			{name: "ClipControlEXT", sym: "glClipControlEXT", params: []param{
				{"origin", "Enum"}, {"depth", "Enum"},
			}},
		},
	},
	{
		name: "GL_OES_copy_image",
		functions: []function{
			{name: "CopyImageSubDataOES", sym: "glCopyImageSubDataOES", params: []param{
				{"srcName", "uint32"}, {"srcTarget", "Enum"}, {"srcLevel", "int32"},
				{"srcX", "int32"}, {"srcY", "int32"}, {"srcZ", "int32"},
				{"dstName", "uint32"}, {"dstTarget", "Enum"}, {"dstLevel", "int32"},
				{"dstX", "int32"}, {"dstY", "int32"}, {"dstZ", "int32"},
				{"srcWidth", "int32"}, {"srcHeight", "int32"}, {"srcDepth", "int32"},
			}},
		},
	},
}

const header = "// Code generated by gles/gen; DO NOT EDIT.\n\n"

func main() {
	writeFile("table.go", genTable())
	writeFile("procs.go", genProcs())
}

func writeFile(name string, src []byte) {
	formatted, err := format.Source(src)
	if err != nil {
		log.Fatalf("gen: formatting %s: %v", name, err)
	}
	if err := os.WriteFile(name, formatted, 0o644); err != nil {
		log.Fatalf("gen: %v", err)
	}
}

func genTable() []byte {
	var b bytes.Buffer
	b.WriteString(header)
	b.WriteString("package gles\n\n")
	b.WriteString("// Slot indices are assigned at generation time, in declaration order.\n")
	b.WriteString("const (\n")
	first := true
	for _, ext := range extensions {
		for _, fn := range ext.functions {
			if first {
				fmt.Fprintf(&b, "\tproc%s = iota\n", fn.name)
				first = false
			} else {
				fmt.Fprintf(&b, "\tproc%s\n", fn.name)
			}
		}
	}
	b.WriteString("\n\tprocCount\n)\n\n")
	b.WriteString("var procNames = [procCount]string{\n")
	for _, ext := range extensions {
		for _, fn := range ext.functions {
			fmt.Fprintf(&b, "\tproc%s: %q,\n", fn.name, fn.sym)
		}
	}
	b.WriteString("}\n\n")
	b.WriteString("var procExtensions = [procCount]string{\n")
	for _, ext := range extensions {
		for _, fn := range ext.functions {
			fmt.Fprintf(&b, "\tproc%s: %q,\n", fn.name, ext.name)
		}
	}
	b.WriteString("}\n\n")
	b.WriteString("var extensionProcs = []extensionDesc{\n")
	for _, ext := range extensions {
		var procs []string
		for _, fn := range ext.functions {
			procs = append(procs, "proc"+fn.name)
		}
		fmt.Fprintf(&b, "\t{name: %q, procs: []int{%s}},\n", ext.name, strings.Join(procs, ", "))
	}
	b.WriteString("}\n\n")
	b.WriteString("func (c *Capabilities) setExtensionFlag(name string, supported bool) {\n")
	b.WriteString("\tswitch name {\n")
	for _, ext := range extensions {
		fmt.Fprintf(&b, "\tcase %q:\n\t\tc.%s = supported\n", ext.name, flagName(ext.name))
	}
	b.WriteString("\t}\n}\n")
	return b.Bytes()
}

func genProcs() []byte {
	var b bytes.Buffer
	b.WriteString(header)
	b.WriteString("package gles\n\n")
	if needUnsafe() {
		b.WriteString("import \"unsafe\"\n\n")
	}
	for _, ext := range extensions {
		for _, fn := range ext.functions {
			var sig, args, keeps []string
			for _, p := range fn.params {
				sig = append(sig, p.name+" "+p.typ)
				args = append(args, convert(p))
				if strings.HasPrefix(p.typ, "*") {
					keeps = append(keeps, p.name)
				}
			}
			ret := ""
			if fn.ret == "bool" {
				ret = " bool"
			}
			fmt.Fprintf(&b, "// %s forwards to %s (%s).\n", fn.name, fn.sym, ext.name)
			fmt.Fprintf(&b, "func (f *Functions) %s(%s)%s {\n", fn.name, strings.Join(sig, ", "), ret)
			call := fmt.Sprintf("f.ext(proc%s).Call(%s)", fn.name, strings.Join(args, ", "))
			switch {
			case fn.ret == "bool" && len(keeps) == 0:
				fmt.Fprintf(&b, "\treturn %s != 0\n", call)
			case fn.ret == "bool":
				fmt.Fprintf(&b, "\tr := %s\n", call)
				for _, k := range keeps {
					fmt.Fprintf(&b, "\tissue34474KeepAlive(%s)\n", k)
				}
				b.WriteString("\treturn r != 0\n")
			default:
				fmt.Fprintf(&b, "\t%s\n", call)
				for _, k := range keeps {
					fmt.Fprintf(&b, "\tissue34474KeepAlive(%s)\n", k)
				}
			}
			b.WriteString("}\n\n")
		}
	}
	return b.Bytes()
}

func needUnsafe() bool {
	for _, ext := range extensions {
		for _, fn := range ext.functions {
			for _, p := range fn.params {
				if strings.HasPrefix(p.typ, "*") || p.typ == "unsafe.Pointer" {
					return true
				}
			}
		}
	}
	return false
}

func convert(p param) string {
	switch {
	case p.typ == "int32":
		return fmt.Sprintf("uintptr(uint32(%s))", p.name)
	case p.typ == "uint32", p.typ == "Enum", p.typ == "int", p.typ == "unsafe.Pointer":
		return fmt.Sprintf("uintptr(%s)", p.name)
	case strings.HasPrefix(p.typ, "*"):
		return fmt.Sprintf("uintptr(unsafe.Pointer(%s))", p.name)
	default:
		panic("gen: unhandled parameter type " + p.typ)
	}
}

func flagName(ext string) string {
	parts := strings.Split(strings.TrimPrefix(ext, "GL_"), "_")
	for i, p := range parts {
		if i == 0 {
			parts[i] = strings.ToUpper(p)
			continue
		}
		parts[i] = strings.ToUpper(p[:1]) + p[1:]
	}
	return strings.Join(parts, "")
}
