package integration

import (
	"bytes"
	"context"
	"multilookup/internal/global"
	"multilookup/internal/logctx"
	"net"
	"regexp"
	"strings"
	"sync"
	"testing"

	lumberserver "github.com/elastic/go-lumber/server/v2"
	mdns "github.com/miekg/dns"
)

// Goroutine safe capture of logger output
type logCapture struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (c *logCapture) Write(p []byte) (n int, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	n, err = c.buf.Write(p)
	return
}

func (c *logCapture) Lines() (lines []string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	lines = strings.SplitAfter(c.buf.String(), "\n")
	return
}

// Context with a logger writing into stdout/stderr captures.
// The returned stop func must be called before inspecting captures.
func newTestLogger(t *testing.T, verbosity int) (ctx context.Context, stdout, stderr *logCapture, stop func()) {
	t.Helper()

	baseCtx, cancel := context.WithCancel(context.Background())
	logger := logctx.NewLogger(global.NSTest, verbosity, baseCtx.Done())
	stdout, stderr = &logCapture{}, &logCapture{}
	logctx.StartWatcher(logger, stdout, stderr)
	ctx = logctx.WithLogger(baseCtx, logger)

	var once sync.Once
	stop = func() {
		once.Do(func() {
			cancel()
			logger.Wake()
			logger.Wait()
		})
	}
	t.Cleanup(stop)
	return
}

// Searches captured log lines for events matching all non-empty filters
func filterLogLines(lines []string, searchText, searchTag, searchSeverity string) (matches string, found bool) {
	bracketRe := regexp.MustCompile(`\[[^\]]*\]`)

	var foundLines []string
	for _, line := range lines {
		if searchTag != "" {
			foundTag := false
			for _, bracket := range bracketRe.FindAllString(line, -1) {
				if strings.Contains(bracket, searchTag) {
					foundTag = true
					break
				}
			}
			if !foundTag {
				continue
			}
		}

		if searchSeverity != "" && !strings.Contains(line, "["+searchSeverity+"]") {
			continue
		}

		if searchText != "" && !strings.Contains(line, searchText) {
			continue
		}

		foundLines = append(foundLines, line)
		found = true
	}

	matches = strings.Join(foundLines, "")
	return
}

// UDP nameserver answering A queries from hosts (name -> IPv4), NXDOMAIN for everything else
func startNameserver(t *testing.T, hosts map[string]string) (addr string) {
	t.Helper()

	pc, err := net.ListenPacket("udp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("failed to listen for nameserver: %v", err)
	}

	handler := mdns.HandlerFunc(func(w mdns.ResponseWriter, req *mdns.Msg) {
		reply := new(mdns.Msg)
		reply.SetReply(req)

		question := req.Question[0]
		address, known := hosts[strings.TrimSuffix(question.Name, ".")]
		switch {
		case !known:
			reply.Rcode = mdns.RcodeNameError
		case question.Qtype == mdns.TypeA:
			reply.Answer = append(reply.Answer, &mdns.A{
				Hdr: mdns.RR_Header{Name: question.Name, Rrtype: mdns.TypeA, Class: mdns.ClassINET, Ttl: 60},
				A:   net.ParseIP(address),
			})
		}
		w.WriteMsg(reply)
	})

	started := make(chan struct{})
	server := &mdns.Server{
		PacketConn:        pc,
		Handler:           handler,
		NotifyStartedFunc: func() { close(started) },
	}
	go server.ActivateAndServe()
	<-started
	t.Cleanup(func() { server.Shutdown() })

	addr = pc.LocalAddr().String()
	return
}

// Beats server acknowledging every batch and keeping the event messages
type beatsCollector struct {
	mu       sync.Mutex
	messages []string
}

func (c *beatsCollector) Messages() (messages []string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	messages = append(messages, c.messages...)
	return
}

func startBeatsCollector(t *testing.T) (addr string, collector *beatsCollector) {
	t.Helper()

	listener, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("failed to listen for beats: %v", err)
	}
	server, err := lumberserver.NewWithListener(listener)
	if err != nil {
		t.Fatalf("failed to start beats server: %v", err)
	}
	t.Cleanup(func() { server.Close() })

	collector = &beatsCollector{}
	go func() {
		for batch := range server.ReceiveChan() {
			collector.mu.Lock()
			for _, event := range batch.Events {
				fields, ok := event.(map[string]interface{})
				if !ok {
					continue
				}
				message, _ := fields["message"].(string)
				collector.messages = append(collector.messages, message)
			}
			collector.mu.Unlock()
			batch.ACK()
		}
	}()

	addr = listener.Addr().String()
	return
}
