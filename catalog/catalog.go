package catalog

import (
	"github.com/viant/mcp-protocol/schema"
)

// Property is a JSON-schema fragment describing a single tool argument.
type Property map[string]interface{}

// InputSchema describes tool arguments; it is forwarded to MCP clients as is.
type InputSchema struct {
	Type       string              `json:"type" yaml:"type"`
	Properties map[string]Property `json:"properties" yaml:"properties"`
	Required   []string            `json:"required" yaml:"required"`
}

// Tool represents a designer operation exposed over MCP.
type Tool struct {
	Name        string      `json:"name" yaml:"name"`
	Description string      `json:"description" yaml:"description"`
	InputSchema InputSchema `json:"inputSchema" yaml:"inputSchema"`
}

// Catalog is an ordered, name-indexed tool list.
type Catalog struct {
	tools []*Tool
	index map[string]*Tool
}

// New creates a catalog; a later tool with a duplicate name replaces the earlier one in place.
func New(tools ...*Tool) *Catalog {
	ret := &Catalog{index: make(map[string]*Tool, len(tools))}
	for _, tool := range tools {
		ret.Add(tool)
	}
	return ret
}

// Add appends a tool to the catalog.
func (c *Catalog) Add(tool *Tool) {
	if prev, ok := c.index[tool.Name]; ok {
		for i, candidate := range c.tools {
			if candidate == prev {
				c.tools[i] = tool
			}
		}
		c.index[tool.Name] = tool
		return
	}
	c.tools = append(c.tools, tool)
	c.index[tool.Name] = tool
}

// Lookup returns a tool by name
func (c *Catalog) Lookup(name string) (*Tool, bool) {
	tool, ok := c.index[name]
	return tool, ok
}

// Len returns number of tools
func (c *Catalog) Len() int {
	return len(c.tools)
}

// Tools returns tools in declaration order
func (c *Catalog) Tools() []*Tool {
	return c.tools
}

// Names returns tool names in declaration order
func (c *Catalog) Names() []string {
	var result = make([]string, 0, len(c.tools))
	for _, tool := range c.tools {
		result = append(result, tool.Name)
	}
	return result
}

// MCPTools converts the catalog into MCP tool descriptors.
func (c *Catalog) MCPTools() []schema.Tool {
	var result = make([]schema.Tool, 0, len(c.tools))
	for _, tool := range c.tools {
		result = append(result, tool.MCPTool())
	}
	return result
}

// MCPTool converts the tool into an MCP tool descriptor.
func (t *Tool) MCPTool() schema.Tool {
	description := t.Description
	properties := make(schema.ToolInputSchemaProperties, len(t.InputSchema.Properties))
	for name, property := range t.InputSchema.Properties {
		properties[name] = map[string]interface{}(property)
	}
	required := t.InputSchema.Required
	if required == nil {
		required = []string{}
	}
	return schema.Tool{
		Name:        t.Name,
		Description: &description,
		InputSchema: schema.ToolInputSchema{
			Type:       t.InputSchema.Type,
			Properties: properties,
			Required:   required,
		},
	}
}

// NewTool creates a tool definition.
func NewTool(name, description string, inputSchema InputSchema) *Tool {
	return &Tool{Name: name, Description: description, InputSchema: inputSchema}
}

// Object creates an object input schema.
func Object(properties map[string]Property, required ...string) InputSchema {
	if properties == nil {
		properties = map[string]Property{}
	}
	if required == nil {
		required = []string{}
	}
	return InputSchema{Type: "object", Properties: properties, Required: required}
}

// String creates a string property.
func String(description string) Property {
	return Property{"type": "string", "description": description}
}

// Enum creates a string property restricted to values.
func Enum(description string, values ...string) Property {
	return Property{"type": "string", "description": description, "enum": values}
}

// Bool creates a boolean property.
func Bool(description string) Property {
	return Property{"type": "boolean", "description": description}
}

// StringArray creates an array of strings property.
func StringArray(description string) Property {
	return Property{"type": "array", "description": description, "items": Property{"type": "string"}}
}

// StringMap creates an object property with string values.
func StringMap(description string) Property {
	return Property{"type": "object", "description": description, "additionalProperties": Property{"type": "string"}}
}
