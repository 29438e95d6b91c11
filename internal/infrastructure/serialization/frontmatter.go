package serialization

import (
	"bufio"
	"bytes"
	"fmt"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	yamlDelimiter = "---"
)

// FrontmatterDocument represents a document with YAML frontmatter
type FrontmatterDocument struct {
	Frontmatter map[string]interface{}
	Content     string
}

// ParseFrontmatter parses a markdown file with YAML frontmatter
func ParseFrontmatter(data []byte) (*FrontmatterDocument, error) {
	scanner := bufio.NewScanner(bytes.NewReader(data))

	doc := &FrontmatterDocument{
		Frontmatter: make(map[string]interface{}),
	}

	// Check if file starts with delimiter
	if !scanner.Scan() {
		return doc, nil // Empty file
	}

	firstLine := strings.TrimSpace(scanner.Text())
	if firstLine != yamlDelimiter {
		// No frontmatter, entire content is body
		doc.Content = string(data)
		return doc, nil
	}

	// Read frontmatter until next delimiter
	var frontmatterLines []string
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == yamlDelimiter {
			break
		}
		frontmatterLines = append(frontmatterLines, line)
	}

	if len(frontmatterLines) > 0 {
		frontmatterYAML := strings.Join(frontmatterLines, "\n")
		if err := yaml.Unmarshal([]byte(frontmatterYAML), &doc.Frontmatter); err != nil {
			return nil, fmt.Errorf("failed to parse YAML frontmatter: %w", err)
		}
	}

	// Read remaining content
	var contentLines []string
	for scanner.Scan() {
		contentLines = append(contentLines, scanner.Text())
	}
	doc.Content = strings.TrimSpace(strings.Join(contentLines, "\n"))

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading document: %w", err)
	}

	return doc, nil
}

// SerializeFrontmatter serializes a document with YAML frontmatter
func SerializeFrontmatter(frontmatter map[string]interface{}, content string) ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteString(yamlDelimiter)
	buf.WriteString("\n")

	if len(frontmatter) > 0 {
		yamlData, err := yaml.Marshal(frontmatter)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal frontmatter: %w", err)
		}
		buf.Write(yamlData)
	}

	buf.WriteString(yamlDelimiter)
	buf.WriteString("\n")

	if content != "" {
		buf.WriteString(content)
		buf.WriteString("\n")
	}

	return buf.Bytes(), nil
}

// GetString safely gets a string value from frontmatter
func (d *FrontmatterDocument) GetString(key string) string {
	if val, ok := d.Frontmatter[key]; ok {
		if str, ok := val.(string); ok {
			return str
		}
	}
	return ""
}

// GetFloat safely gets a float value from frontmatter
func (d *FrontmatterDocument) GetFloat(key string) float64 {
	if val, ok := d.Frontmatter[key]; ok {
		switch v := val.(type) {
		case float64:
			return v
		case int:
			return float64(v)
		case int64:
			return float64(v)
		}
	}
	return 0
}

// GetTime safely gets an RFC3339 timestamp from frontmatter
func (d *FrontmatterDocument) GetTime(key string) *time.Time {
	str := d.GetString(key)
	if str == "" {
		return nil
	}
	t, err := time.Parse(time.RFC3339, str)
	if err != nil {
		return nil
	}
	return &t
}
