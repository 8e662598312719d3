package server

import (
	"context"
	"encoding/json"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/designer-mcp/bridge"
	"github.com/viant/designer-mcp/state"
	"github.com/viant/jsonrpc"
	"github.com/viant/mcp-protocol/schema"
)

type testNotifier struct {
	mux           sync.Mutex
	notifications []*jsonrpc.Notification
}

func (n *testNotifier) Notify(_ context.Context, notification *jsonrpc.Notification) error {
	n.mux.Lock()
	defer n.mux.Unlock()
	n.notifications = append(n.notifications, notification)
	return nil
}

func (n *testNotifier) count() int {
	n.mux.Lock()
	defer n.mux.Unlock()
	return len(n.notifications)
}

type toolResultView struct {
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
	IsError *bool `json:"isError"`
}

func newTestServer(t *testing.T, options ...bridge.Option) (*Server, *bridge.Bridge) {
	t.Helper()
	aBridge := bridge.New(state.NewMemoryStore(), options...)
	t.Cleanup(func() { _ = aBridge.Close() })
	srv, err := New(aBridge)
	require.NoError(t, err)
	return srv, aBridge
}

func serve(t *testing.T, handler *Handler, id interface{}, method string, params string) *jsonrpc.Response {
	t.Helper()
	request := &jsonrpc.Request{Jsonrpc: jsonrpc.Version, Id: id, Method: method}
	if params != "" {
		request.Params = json.RawMessage(params)
	}
	response := &jsonrpc.Response{}
	handler.Serve(context.Background(), request, response)
	return response
}

func decodeToolResult(t *testing.T, response *jsonrpc.Response) *toolResultView {
	t.Helper()
	require.Nil(t, response.Error)
	result := &toolResultView{}
	require.NoError(t, json.Unmarshal(response.Result, result))
	require.Len(t, result.Content, 1)
	assert.Equal(t, "text", result.Content[0].Type)
	return result
}

// executeNext plays the extension: it waits for a command and posts payload back.
func executeNext(t *testing.T, aBridge *bridge.Bridge, payload string) <-chan *bridge.CommandRequest {
	t.Helper()
	done := make(chan *bridge.CommandRequest, 1)
	go func() {
		ctx := context.Background()
		deadline := time.Now().Add(2 * time.Second)
		for time.Now().Before(deadline) {
			delivery, err := aBridge.TakeNext(ctx)
			if err != nil {
				break
			}
			if !delivery.IsHeartbeat() {
				_ = aBridge.Complete(ctx, delivery.Command.ID, json.RawMessage(payload))
				done <- delivery.Command
				return
			}
			time.Sleep(5 * time.Millisecond)
		}
		close(done)
	}()
	return done
}

func TestHandler_Initialize(t *testing.T) {
	srv, _ := newTestServer(t)
	handler := srv.newHandler(context.Background(), &testNotifier{})
	response := serve(t, handler, 1, "initialize", `{"protocolVersion":"2024-11-05","capabilities":{},"clientInfo":{"name":"test","version":"1"}}`)
	require.Nil(t, response.Error)
	var result map[string]interface{}
	require.NoError(t, json.Unmarshal(response.Result, &result))
	serverInfo, ok := result["serverInfo"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, Name, serverInfo["name"])
	assert.Equal(t, Version, serverInfo["version"])
	capabilities, ok := result["capabilities"].(map[string]interface{})
	require.True(t, ok)
	assert.Contains(t, capabilities, "tools")
	assert.Contains(t, capabilities, "resources")

	response = serve(t, handler, 2, "ping", "")
	assert.Nil(t, response.Error)

	response = serve(t, handler, 3, "prompts/list", "{}")
	assert.NotNil(t, response.Error)
}

func TestHandler_ListTools(t *testing.T) {
	srv, _ := newTestServer(t)
	handler := srv.newHandler(context.Background(), &testNotifier{})
	response := serve(t, handler, 1, "tools/list", "{}")
	require.Nil(t, response.Error)
	var result struct {
		Tools []struct {
			Name        string                 `json:"name"`
			InputSchema map[string]interface{} `json:"inputSchema"`
		} `json:"tools"`
	}
	require.NoError(t, json.Unmarshal(response.Result, &result))
	assert.Equal(t, srv.Catalog().Len(), len(result.Tools))
	var names []string
	for _, tool := range result.Tools {
		names = append(names, tool.Name)
		assert.Equal(t, "object", tool.InputSchema["type"])
	}
	assert.Equal(t, srv.Catalog().Names(), names)
}

func TestHandler_CallTool(t *testing.T) {
	var testCases = []struct {
		description string
		tool        string
		arguments   string
		payload     string
		connected   bool
		expectText  string
		expectError *Failure
	}{
		{
			description: "structured result is indented",
			tool:        "get_site_info",
			arguments:   `{}`,
			payload:     `{"name":"Site A","pages":2}`,
			connected:   true,
			expectText:  "{\n  \"name\": \"Site A\",\n  \"pages\": 2\n}",
		},
		{
			description: "string result verbatim",
			tool:        "notify_user",
			arguments:   `{"message":"hi"}`,
			payload:     `"Notification sent"`,
			connected:   true,
			expectText:  "Notification sent",
		},
		{
			description: "consumer error",
			tool:        "remove_element",
			arguments:   `{}`,
			payload:     `{"error":"No element selected"}`,
			connected:   true,
			expectError: &Failure{Error: true, Message: "No element selected", ToolName: "remove_element", Kind: KindExecutionFailed},
		},
		{
			description: "consumer not connected",
			tool:        "get_current_page",
			arguments:   `{"x":1}`,
			expectError: &Failure{
				Error:    true,
				Message:  (&bridge.UnavailableError{Tool: "get_current_page"}).Error(),
				ToolName: "get_current_page",
				Kind:     KindConsumerUnavailable,
				Args:     json.RawMessage(`{"x":1}`),
			},
		},
	}
	for _, testCase := range testCases {
		t.Run(testCase.description, func(t *testing.T) {
			srv, aBridge := newTestServer(t)
			handler := srv.newHandler(context.Background(), &testNotifier{})
			var executed <-chan *bridge.CommandRequest
			if testCase.connected {
				_, err := aBridge.TakeNext(context.Background())
				require.NoError(t, err)
				executed = executeNext(t, aBridge, testCase.payload)
			}
			params := `{"name":"` + testCase.tool + `","arguments":` + testCase.arguments + `}`
			result := decodeToolResult(t, serve(t, handler, 7, "tools/call", params))
			if executed != nil {
				command := <-executed
				require.NotNil(t, command)
				assert.Equal(t, testCase.tool, command.Name)
				assert.JSONEq(t, testCase.arguments, string(command.Params))
			}
			if testCase.expectError == nil {
				assert.Nil(t, result.IsError)
				assert.Equal(t, testCase.expectText, result.Content[0].Text)
				return
			}
			require.NotNil(t, result.IsError)
			assert.True(t, *result.IsError)
			actual := &Failure{}
			require.NoError(t, json.Unmarshal([]byte(result.Content[0].Text), actual))
			assert.Equal(t, testCase.expectError.Error, actual.Error)
			assert.Equal(t, testCase.expectError.Message, actual.Message)
			assert.Equal(t, testCase.expectError.ToolName, actual.ToolName)
			assert.Equal(t, testCase.expectError.Kind, actual.Kind)
			if testCase.expectError.Args != nil {
				assert.JSONEq(t, string(testCase.expectError.Args), string(actual.Args))
			}
		})
	}
}

func TestHandler_CallUnknownTool(t *testing.T) {
	srv, aBridge := newTestServer(t)
	_, err := aBridge.TakeNext(context.Background())
	require.NoError(t, err)
	handler := srv.newHandler(context.Background(), &testNotifier{})
	response := serve(t, handler, 1, "tools/call", `{"name":"drop_database","arguments":{}}`)
	require.NotNil(t, response.Error)
	assert.Contains(t, response.Error.Message, "drop_database")

	status, err := aBridge.Status(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, status.CommandsExecuted)
}

func TestHandler_CallTimeout(t *testing.T) {
	srv, aBridge := newTestServer(t, bridge.WithCommandTimeout(20*time.Millisecond))
	_, err := aBridge.TakeNext(context.Background())
	require.NoError(t, err)
	handler := srv.newHandler(context.Background(), &testNotifier{})
	result := decodeToolResult(t, serve(t, handler, 1, "tools/call", `{"name":"upload_asset","arguments":{}}`))
	failure := &Failure{}
	require.NoError(t, json.Unmarshal([]byte(result.Content[0].Text), failure))
	assert.Equal(t, KindTimeout, failure.Kind)
	assert.Contains(t, failure.Message, "upload_asset")
}

func TestHandler_Cancel(t *testing.T) {
	srv, aBridge := newTestServer(t)
	ctx := context.Background()
	_, err := aBridge.TakeNext(ctx)
	require.NoError(t, err)
	handler := srv.newHandler(ctx, &testNotifier{})

	responses := make(chan *jsonrpc.Response, 1)
	go func() {
		responses <- serve(t, handler, 5, "tools/call", `{"name":"list_components","arguments":{}}`)
	}()
	require.Eventually(t, func() bool {
		queue, err := aBridge.Queue(ctx)
		return err == nil && len(queue.Queue) == 1
	}, time.Second, 5*time.Millisecond)

	handler.OnNotification(ctx, &jsonrpc.Notification{Method: schema.MethodNotificationCancel, Params: json.RawMessage(`{"requestId":5,"reason":"user"}`)})
	select {
	case response := <-responses:
		result := decodeToolResult(t, response)
		failure := &Failure{}
		require.NoError(t, json.Unmarshal([]byte(result.Content[0].Text), failure))
		assert.Equal(t, KindCancelled, failure.Kind)
	case <-time.After(time.Second):
		t.Fatal("call was not cancelled")
	}
}

func TestHandler_ConcurrentStringIDs(t *testing.T) {
	srv, aBridge := newTestServer(t)
	ctx := context.Background()
	_, err := aBridge.TakeNext(ctx)
	require.NoError(t, err)
	handler := srv.newHandler(ctx, &testNotifier{})

	calls := map[string]string{"req-a": "get_site_info", "req-b": "get_current_page"}
	responses := map[string]chan *jsonrpc.Response{}
	for id, tool := range calls {
		id, tool := id, tool
		response := make(chan *jsonrpc.Response, 1)
		responses[id] = response
		go func() {
			response <- serve(t, handler, id, "tools/call", `{"name":"`+tool+`","arguments":{}}`)
		}()
	}
	commandIDs := map[string]string{}
	require.Eventually(t, func() bool {
		delivery, err := aBridge.TakeNext(ctx)
		if err == nil && !delivery.IsHeartbeat() {
			commandIDs[delivery.Command.Name] = delivery.Command.ID
		}
		return len(commandIDs) == 2
	}, time.Second, 5*time.Millisecond)

	require.NoError(t, aBridge.Complete(ctx, commandIDs["get_site_info"], json.RawMessage(`"site"`)))
	result := decodeToolResult(t, <-responses["req-a"])
	assert.Equal(t, "site", result.Content[0].Text)

	select {
	case <-responses["req-b"]:
		t.Fatal("finishing req-a must not end req-b")
	case <-time.After(50 * time.Millisecond):
	}

	handler.OnNotification(ctx, &jsonrpc.Notification{Method: schema.MethodNotificationCancel, Params: json.RawMessage(`{"requestId":"req-a"}`)})
	require.NoError(t, aBridge.Complete(ctx, commandIDs["get_current_page"], json.RawMessage(`"home"`)))
	result = decodeToolResult(t, <-responses["req-b"])
	assert.Nil(t, result.IsError)
	assert.Equal(t, "home", result.Content[0].Text)
}

func TestHandler_CancelStringID(t *testing.T) {
	srv, aBridge := newTestServer(t)
	ctx := context.Background()
	_, err := aBridge.TakeNext(ctx)
	require.NoError(t, err)
	handler := srv.newHandler(ctx, &testNotifier{})

	kept := make(chan *jsonrpc.Response, 1)
	cancelled := make(chan *jsonrpc.Response, 1)
	go func() {
		kept <- serve(t, handler, "keep", "tools/call", `{"name":"get_site_info","arguments":{}}`)
	}()
	go func() {
		cancelled <- serve(t, handler, "drop", "tools/call", `{"name":"list_components","arguments":{}}`)
	}()
	require.Eventually(t, func() bool {
		queue, err := aBridge.Queue(ctx)
		return err == nil && len(queue.Queue) == 2 && handler.activeContexts.Len() == 2
	}, time.Second, 5*time.Millisecond)

	handler.OnNotification(ctx, &jsonrpc.Notification{Method: schema.MethodNotificationCancel, Params: json.RawMessage(`{"requestId":"drop"}`)})
	result := decodeToolResult(t, <-cancelled)
	failure := &Failure{}
	require.NoError(t, json.Unmarshal([]byte(result.Content[0].Text), failure))
	assert.Equal(t, KindCancelled, failure.Kind)
	assert.Equal(t, "list_components", failure.ToolName)

	select {
	case <-kept:
		t.Fatal("cancelling drop must not end keep")
	case <-time.After(50 * time.Millisecond):
	}
	queue, err := aBridge.Queue(ctx)
	require.NoError(t, err)
	for _, entry := range queue.Queue {
		if entry.Name == "get_site_info" {
			require.NoError(t, aBridge.Complete(ctx, entry.ID, json.RawMessage(`"ok"`)))
		}
	}
	result = decodeToolResult(t, <-kept)
	assert.Equal(t, "ok", result.Content[0].Text)
}

func TestHandler_Resources(t *testing.T) {
	srv, aBridge := newTestServer(t)
	handler := srv.newHandler(context.Background(), &testNotifier{})

	response := serve(t, handler, 1, "resources/list", "{}")
	require.Nil(t, response.Error)
	var list struct {
		Resources []struct {
			Uri  string `json:"uri"`
			Name string `json:"name"`
		} `json:"resources"`
	}
	require.NoError(t, json.Unmarshal(response.Result, &list))
	require.Len(t, list.Resources, 2)
	assert.Equal(t, SiteInfoURI, list.Resources[0].Uri)
	assert.Equal(t, CommandQueueURI, list.Resources[1].Uri)

	var read struct {
		Contents []struct {
			Uri  string `json:"uri"`
			Text string `json:"text"`
		} `json:"contents"`
	}
	response = serve(t, handler, 2, "resources/read", `{"uri":"designer://site-info"}`)
	require.Nil(t, response.Error)
	require.NoError(t, json.Unmarshal(response.Result, &read))
	require.Len(t, read.Contents, 1)
	assert.JSONEq(t, `{"connected":false,"lastPing":"Never","commandsExecuted":0,"pendingCommands":0}`, read.Contents[0].Text)

	_, err := aBridge.TakeNext(context.Background())
	require.NoError(t, err)
	_, err = aBridge.Submit(context.Background(), "get_current_page", json.RawMessage(`{}`))
	require.NoError(t, err)
	response = serve(t, handler, 3, "resources/read", `{"uri":"designer://command-queue"}`)
	require.Nil(t, response.Error)
	require.NoError(t, json.Unmarshal(response.Result, &read))
	var queue bridge.QueueSnapshot
	require.NoError(t, json.Unmarshal([]byte(read.Contents[0].Text), &queue))
	assert.Equal(t, 1, queue.TotalCommands)
	assert.Equal(t, 1, queue.PendingCommands)
	require.Len(t, queue.Queue, 1)
	assert.Equal(t, "get_current_page", queue.Queue[0].Name)

	response = serve(t, handler, 4, "resources/read", `{"uri":"designer://unknown"}`)
	assert.NotNil(t, response.Error)
}

func TestHandler_Logging(t *testing.T) {
	srv, aBridge := newTestServer(t)
	_, err := aBridge.TakeNext(context.Background())
	require.NoError(t, err)
	notifier := &testNotifier{}
	handler := srv.newHandler(context.Background(), notifier)

	executed := executeNext(t, aBridge, `"ok"`)
	decodeToolResult(t, serve(t, handler, 1, "tools/call", `{"name":"get_site_info"}`))
	<-executed
	assert.Equal(t, 0, notifier.count(), "no notifications before logging/setLevel")

	response := serve(t, handler, 2, "logging/setLevel", `{"level":"debug"}`)
	require.Nil(t, response.Error)
	executed = executeNext(t, aBridge, `"ok"`)
	decodeToolResult(t, serve(t, handler, 3, "tools/call", `{"name":"get_site_info"}`))
	<-executed
	assert.Equal(t, 1, notifier.count())
}
