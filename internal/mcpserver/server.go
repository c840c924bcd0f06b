// Package mcpserver provides an MCP (Model Context Protocol) server
// that exposes the title tools for LLM integration via stdio transport.
package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/steven-cutting/decree/internal/storage"
	"github.com/steven-cutting/decree/internal/title"
)

// NamingURI identifies the naming conventions resource.
const NamingURI = "decree://naming"

// Server wraps the MCP server with the entry tools.
type Server struct {
	mcp    *server.MCPServer
	dir    string
	store  storage.Provider
	logger *slog.Logger
}

// New creates a new MCP server bound to the entry directory dir.
func New(dir string, store storage.Provider, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	s := &Server{dir: dir, store: store, logger: logger}

	s.mcp = server.NewMCPServer(
		"Decree",
		"1.0.0",
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, false),
	)

	s.mcp.AddTool(mcp.NewTool("set_title",
		mcp.WithDescription("Set the title of one entry. The heading is rewritten and, when renaming "+
			"is enabled, the file is renamed to match and every link to it is updated. "+
			"Read the decree://naming resource for the naming conventions."),
		mcp.WithString("target", mcp.Required(), mcp.Description("Entry path, name without .md, number (e.g. 7), or slug")),
		mcp.WithString("title", mcp.Required(), mcp.Description("New human-readable title")),
		mcp.WithBoolean("rename", mcp.Description("Rename the file to match the title (defaults to the directory config)")),
		mcp.WithBoolean("dry_run", mcp.Description("Report the changes without writing anything")),
	), s.setTitle)

	s.mcp.AddTool(mcp.NewTool("sync_titles",
		mcp.WithDescription("Bring every top-level entry's heading prefix and filename in line with its title."),
		mcp.WithBoolean("rename", mcp.Description("Rename files to match titles (defaults to the directory config)")),
		mcp.WithBoolean("dry_run", mcp.Description("Report the changes without writing anything")),
	), s.syncTitles)

	s.mcp.AddTool(mcp.NewTool("list_entries",
		mcp.WithDescription("List the top-level entries with their parsed prefix, title, and sync state."),
	), s.listEntries)

	s.mcp.AddTool(mcp.NewTool("read_entry",
		mcp.WithDescription("Read the raw Markdown content of an entry."),
		mcp.WithString("path", mcp.Required(), mcp.Description("Relative path to the entry (e.g. 0001-use-go.md)")),
	), s.readEntry)

	s.mcp.AddResource(
		mcp.NewResource(NamingURI, "Entry Naming Conventions",
			mcp.WithResourceDescription("Filename and heading conventions the title tools maintain."),
			mcp.WithMIMEType("text/markdown"),
		),
		s.readNamingResource,
	)

	return s
}

// ServeStdio starts the MCP server on stdin/stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcp)
}

// MCPServer returns the underlying server for testing.
func (s *Server) MCPServer() *server.MCPServer {
	return s.mcp
}

func (s *Server) setTitle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	target, err := req.RequireString("target")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	newTitle, err := req.RequireString("title")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	newTitle = strings.TrimSpace(newTitle)
	if newTitle == "" {
		return mcp.NewToolResultError("title must not be empty"), nil
	}

	var msgs []string
	ec := s.execContext(req, &msgs)
	if err := title.UpdateTitle(s.dir, target, newTitle, optionalBool(req, "rename"), ec); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(report(msgs, ec.DryRun)), nil
}

func (s *Server) syncTitles(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var msgs []string
	ec := s.execContext(req, &msgs)
	if err := title.SyncTitles(s.dir, optionalBool(req, "rename"), ec); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(report(msgs, ec.DryRun)), nil
}

func (s *Server) listEntries(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	entries, err := title.ListEntries(s.dir)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	out, _ := json.MarshalIndent(entries, "", "  ")
	return mcp.NewToolResultText(string(out)), nil
}

func (s *Server) readEntry(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path, err := req.RequireString("path")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	data, err := s.store.Read(path)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("not found: %s", path)), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}

func (s *Server) readNamingResource(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      NamingURI,
			MIMEType: "text/markdown",
			Text:     NamingConventions,
		},
	}, nil
}

func (s *Server) execContext(req mcp.CallToolRequest, msgs *[]string) title.ExecutionContext {
	return title.ExecutionContext{
		DryRun: req.GetBool("dry_run", false),
		Sink: title.SinkFunc(func(m string) {
			*msgs = append(*msgs, m)
		}),
		Logger: s.logger,
	}
}

// optionalBool returns nil when the argument is absent so the directory
// config decides.
func optionalBool(req mcp.CallToolRequest, key string) *bool {
	if _, ok := req.GetArguments()[key]; !ok {
		return nil
	}
	v := req.GetBool(key, false)
	return &v
}

func report(msgs []string, dryRun bool) string {
	if len(msgs) == 0 {
		return "no changes"
	}
	if dryRun {
		for i, m := range msgs {
			msgs[i] = "DRY-RUN: " + m
		}
	}
	return strings.Join(msgs, "\n")
}
