// Package pydoc manages the local pydoc HTTP server as a child process.
package pydoc

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"regexp"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
)

// readyTimeout is how long the child gets to print its ready line.
const readyTimeout = 15 * time.Second

var urlPattern = regexp.MustCompile(`http://\S+`)

// Server is a running pydoc HTTP server child process.
type Server struct {
	URL string

	cmd   *exec.Cmd
	stdin io.WriteCloser
}

// Start launches "python -m pydoc -p port" (port 0 picks an arbitrary one)
// and waits for the server-ready line to learn the URL.
func Start(python string, port int) (*Server, error) {
	if python == "" {
		python = "python3"
	}
	cmd := exec.Command(python, "-m", "pydoc", "-p", strconv.Itoa(port))

	// pydoc reads commands from its stdin; hold the pipe open so it keeps
	// serving until Stop.
	stdin, err := cmd.StdinPipe()
	if err != nil {
		return nil, err
	}
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, err
	}
	if err := cmd.Start(); err != nil {
		return nil, err
	}

	urlCh := make(chan string, 1)
	go func() {
		scanner := bufio.NewScanner(stdout)
		for scanner.Scan() {
			if url := urlPattern.FindString(scanner.Text()); url != "" {
				urlCh <- url
				break
			}
		}
		close(urlCh)
		// Keep draining so the child never blocks on a full pipe.
		io.Copy(io.Discard, stdout)
	}()

	select {
	case url, ok := <-urlCh:
		if !ok || url == "" {
			stdin.Close()
			cmd.Process.Kill()
			cmd.Wait()
			return nil, errors.New("pydoc server exited before reporting its URL")
		}
		log.Debugf("pydoc server ready at %s", url)
		return &Server{URL: url, cmd: cmd, stdin: stdin}, nil
	case <-time.After(readyTimeout):
		stdin.Close()
		cmd.Process.Kill()
		cmd.Wait()
		return nil, fmt.Errorf("pydoc server did not become ready within %s", readyTimeout)
	}
}

// Stop asks pydoc to quit and reaps the child.
func (s *Server) Stop() {
	if s == nil || s.cmd == nil {
		return
	}
	// "q" is pydoc's quit command; killing is the fallback.
	fmt.Fprintln(s.stdin, "q")
	s.stdin.Close()

	done := make(chan struct{})
	go func() {
		s.cmd.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(3 * time.Second):
		s.cmd.Process.Kill()
		<-done
	}
}
