// Command peerauth-demo wires a client and a server session together
// over the loopback transport and prints every status transition as
// the challenge-response handshake runs to completion.
package main

import (
	"context"
	"fmt"
	"log"
	"net"
	"sync"
	"time"

	"github.com/quietkey/peerauth/session"
	"github.com/quietkey/peerauth/transport"
)

// freePort asks the kernel for an ephemeral UDP port and releases it
// immediately so NewLoopback can bind it.
func freePort() (int, error) {
	conn, err := net.ListenUDP("udp", &net.UDPAddr{IP: net.ParseIP("127.0.0.1"), Port: 0})
	if err != nil {
		return 0, fmt.Errorf("reserve ephemeral port: %w", err)
	}
	port := conn.LocalAddr().(*net.UDPAddr).Port
	if err := conn.Close(); err != nil {
		return 0, err
	}
	return port, nil
}

// setupLoopbackPair creates two crossed loopback transports: node A
// receives on portA and sends to portB, node B the reverse.
func setupLoopbackPair() (*transport.Loopback, *transport.Loopback, error) {
	portA, err := freePort()
	if err != nil {
		return nil, nil, fmt.Errorf("reserve port A: %w", err)
	}
	portB, err := freePort()
	if err != nil {
		return nil, nil, fmt.Errorf("reserve port B: %w", err)
	}

	a, err := transport.NewLoopback(transport.LoopbackParams{
		RecvPort: portA, RecvIP: "127.0.0.1",
		SendPort: portB, SendIP: "127.0.0.1",
	})
	if err != nil {
		return nil, nil, fmt.Errorf("create loopback A: %w", err)
	}

	b, err := transport.NewLoopback(transport.LoopbackParams{
		RecvPort: portB, RecvIP: "127.0.0.1",
		SendPort: portA, SendIP: "127.0.0.1",
	})
	if err != nil {
		a.Close()
		return nil, nil, fmt.Errorf("create loopback B: %w", err)
	}

	fmt.Printf("Client listening on 127.0.0.1:%d, sending to :%d\n", portA, portB)
	fmt.Printf("Server listening on 127.0.0.1:%d, sending to :%d\n", portB, portA)

	return a, b, nil
}

// newSessionPair builds a client and a server session wired to the
// given transports.
func newSessionPair(clientTr, serverTr transport.Transport) (client, server *session.Session, err error) {
	client, err = session.New(session.Params{
		Flags:     session.FlagClient | session.FlagChallengeMethod,
		Transport: clientTr,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("init client session: %w", err)
	}

	server, err = session.New(session.Params{
		Flags:      session.FlagServer | session.FlagChallengeMethod,
		InstanceID: 1,
		Transport:  serverTr,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("init server session: %w", err)
	}

	return client, server, nil
}

func main() {
	fmt.Println("=== Challenge-Response Handshake Demo ===")

	clientTr, serverTr, err := setupLoopbackPair()
	if err != nil {
		log.Fatal(err)
	}
	defer clientTr.Close()
	defer serverTr.Close()

	client, server, err := newSessionPair(clientTr, serverTr)
	if err != nil {
		log.Fatal(err)
	}
	defer client.Close()
	defer server.Close()

	var wg sync.WaitGroup
	var clientStatus, serverStatus session.Status
	wg.Add(2)

	clientDone := make(chan struct{})
	serverDone := make(chan struct{})
	client.OnStatus(func(s session.Status) {
		fmt.Printf("[client] status: %s\n", s)
		if s.Terminal() {
			clientStatus = s
			close(clientDone)
		}
	})
	server.OnStatus(func(s session.Status) {
		fmt.Printf("[server] status: %s\n", s)
		if s.Terminal() {
			serverStatus = s
			close(serverDone)
		}
	})

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Start(ctx); err != nil {
		log.Fatal(err)
	}
	if err := client.Start(ctx); err != nil {
		log.Fatal(err)
	}

	go func() { <-clientDone; wg.Done() }()
	go func() { <-serverDone; wg.Done() }()
	wg.Wait()

	fmt.Println("\n=== Demo Complete ===")
	fmt.Printf("Client final status: %s\n", clientStatus)
	fmt.Printf("Server final status: %s\n", serverStatus)
}
