package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/zamm-dev/navedit/internal/logging"
	"github.com/zamm-dev/navedit/internal/models"
	"github.com/zamm-dev/navedit/internal/services"
)

type ListMenusArgs struct{}

type ListMenusResult struct {
	Menus []models.MenuSummary `json:"menus"`
}

type CreateMenuArgs struct {
	Name string `json:"name" jsonschema:"Name of the new navigation menu, unique ignoring case"`
}

type CreateMenuResult struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Slug    string `json:"slug"`
	Message string `json:"message"`
}

type DeleteMenuArgs struct {
	ID int `json:"id" jsonschema:"ID of the menu to delete"`
}

type DeleteMenuResult struct {
	ID      int    `json:"id"`
	Message string `json:"message"`
}

type SetPostTitleArgs struct {
	PostID string `json:"post_id" jsonschema:"ID of the post to retitle"`
	Title  string `json:"title" jsonschema:"New title; may be empty"`
}

type SetPostTitleResult struct {
	PostID  string `json:"post_id"`
	Title   string `json:"title"`
	Message string `json:"message"`
}

// Transports accepted by Start
const (
	TransportStdio = "stdio"
	TransportHTTP  = "http"
)

// shutdownTimeout bounds how long Stop waits for HTTP sessions to drain
const shutdownTimeout = 5 * time.Second

// ParseTransport validates a transport name before the server is started
func ParseTransport(transport string) (string, error) {
	switch transport {
	case TransportStdio, TransportHTTP:
		return transport, nil
	default:
		return "", models.NewNavError(models.ErrTypeValidation, fmt.Sprintf("unsupported transport %q (use %s or %s)", transport, TransportStdio, TransportHTTP))
	}
}

type Server struct {
	menuService services.MenuService
	postService services.PostService
	readOnly    bool
	tools       []string

	mu         sync.Mutex
	mcpServer  *mcp.Server
	cancel     context.CancelFunc
	httpServer *http.Server
}

func NewServer(menuService services.MenuService, postService services.PostService) *Server {
	return &Server{
		menuService: menuService,
		postService: postService,
	}
}

// SetReadOnly limits the server to tools that do not change menus or posts
func (s *Server) SetReadOnly(readOnly bool) {
	s.readOnly = readOnly
}

// Tools returns the names of the tools registered by the last build
func (s *Server) Tools() []string {
	return append([]string(nil), s.tools...)
}

func errorResult[T any](format string, args ...interface{}) *mcp.CallToolResultFor[T] {
	return &mcp.CallToolResultFor[T]{
		IsError: true,
		Content: []mcp.Content{
			&mcp.TextContent{Text: fmt.Sprintf(format, args...)},
		},
	}
}

func jsonResult[T any](result T) *mcp.CallToolResultFor[T] {
	resultJSON, err := json.Marshal(result)
	if err != nil {
		return errorResult[T]("Error marshaling result: %v", err)
	}
	return &mcp.CallToolResultFor[T]{
		Content: []mcp.Content{
			&mcp.TextContent{Text: string(resultJSON)},
		},
	}
}

func (s *Server) ListMenus(ctx context.Context, ss *mcp.ServerSession, params *mcp.CallToolParamsFor[ListMenusArgs]) (*mcp.CallToolResultFor[ListMenusResult], error) {
	menus, err := s.menuService.ListMenuSummaries()
	if err != nil {
		return errorResult[ListMenusResult]("Error listing menus: %v", err), nil
	}
	if menus == nil {
		menus = []models.MenuSummary{}
	}
	return jsonResult(ListMenusResult{Menus: menus}), nil
}

func (s *Server) CreateMenu(ctx context.Context, ss *mcp.ServerSession, params *mcp.CallToolParamsFor[CreateMenuArgs]) (*mcp.CallToolResultFor[CreateMenuResult], error) {
	menu, err := s.menuService.CreateMenu(ctx, params.Arguments.Name)
	if err != nil {
		return errorResult[CreateMenuResult]("Error creating menu: %v", err), nil
	}
	logging.Info(logging.SubsystemMCP, "created menu %d (%s)", menu.ID, menu.Name)

	return jsonResult(CreateMenuResult{
		ID:      menu.ID,
		Name:    menu.Name,
		Slug:    menu.Slug,
		Message: fmt.Sprintf("Successfully created menu '%s'", menu.Name),
	}), nil
}

func (s *Server) DeleteMenu(ctx context.Context, ss *mcp.ServerSession, params *mcp.CallToolParamsFor[DeleteMenuArgs]) (*mcp.CallToolResultFor[DeleteMenuResult], error) {
	id := params.Arguments.ID
	if err := s.menuService.DeleteMenu(id); err != nil {
		if models.IsErrorType(err, models.ErrTypeNotFound) {
			return errorResult[DeleteMenuResult]("Error: Menu with ID %d not found", id), nil
		}
		return errorResult[DeleteMenuResult]("Error deleting menu: %v", err), nil
	}
	logging.Info(logging.SubsystemMCP, "deleted menu %d", id)

	return jsonResult(DeleteMenuResult{
		ID:      id,
		Message: fmt.Sprintf("Successfully deleted menu %d", id),
	}), nil
}

func (s *Server) SetPostTitle(ctx context.Context, ss *mcp.ServerSession, params *mcp.CallToolParamsFor[SetPostTitleArgs]) (*mcp.CallToolResultFor[SetPostTitleResult], error) {
	args := params.Arguments
	title := args.Title

	post, err := s.postService.UpdatePost(args.PostID, models.PostEdits{Title: &title})
	if err != nil {
		if models.IsErrorType(err, models.ErrTypeNotFound) {
			return errorResult[SetPostTitleResult]("Error: Post with ID '%s' not found", args.PostID), nil
		}
		return errorResult[SetPostTitleResult]("Error updating post: %v", err), nil
	}

	return jsonResult(SetPostTitleResult{
		PostID:  post.ID,
		Title:   post.Title,
		Message: fmt.Sprintf("Successfully set the title of post '%s'", post.ID),
	}), nil
}

func (s *Server) build() *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{Name: "navedit-server"}, nil)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_menus",
		Description: "List the navigation menus with their IDs and names",
	}, s.ListMenus)
	s.tools = []string{"list_menus"}
	if s.readOnly {
		return server
	}

	mcp.AddTool(server, &mcp.Tool{
		Name:        "create_menu",
		Description: "Create a new, empty navigation menu",
	}, s.CreateMenu)
	mcp.AddTool(server, &mcp.Tool{
		Name:        "delete_menu",
		Description: "Delete a navigation menu and all of its items",
	}, s.DeleteMenu)
	mcp.AddTool(server, &mcp.Tool{
		Name:        "set_post_title",
		Description: "Set the title of a post",
	}, s.SetPostTitle)
	s.tools = append(s.tools, "create_menu", "delete_menu", "set_post_title")

	return server
}

// Start serves until the transport ends or Stop is called
func (s *Server) Start(transport string, address string) error {
	transport, err := ParseTransport(transport)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	s.mu.Lock()
	server := s.build()
	s.mcpServer = server
	s.cancel = cancel
	s.mu.Unlock()

	switch transport {
	case TransportStdio:
		logging.Info(logging.SubsystemMCP, "starting MCP server with stdio transport, tools %v", s.tools)
		loggingTransport := mcp.NewLoggingTransport(mcp.NewStdioTransport(), os.Stderr)
		if err := server.Run(ctx, loggingTransport); err != nil && ctx.Err() == nil {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	default:
		logging.Info(logging.SubsystemMCP, "starting MCP server with HTTP transport on %s, tools %v", address, s.tools)
		handler := mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server {
			return server
		}, nil)
		httpServer := &http.Server{Addr: address, Handler: handler}

		s.mu.Lock()
		if ctx.Err() != nil {
			s.mu.Unlock()
			return nil
		}
		s.httpServer = httpServer
		s.mu.Unlock()

		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}
}

// Stop ends a running Start; it is a no-op when nothing is running
func (s *Server) Stop() error {
	s.mu.Lock()
	cancel := s.cancel
	httpServer := s.httpServer
	s.cancel = nil
	s.httpServer = nil
	s.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	if httpServer == nil {
		return nil
	}

	ctx, done := context.WithTimeout(context.Background(), shutdownTimeout)
	defer done()
	return httpServer.Shutdown(ctx)
}
