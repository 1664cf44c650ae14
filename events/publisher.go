package events

import (
	"context"
	"encoding/json"
	"log"

	"nft-asset-bridge/model"

	"github.com/go-zeromq/zmq4"
)

// issuanceTopic ZMQ topic frame for committed issuances
const issuanceTopic = "issuance"

// IssuanceEvent payload published for every committed issuance. Operators
// subscribe to reconcile persistence failures out of band.
type IssuanceEvent struct {
	Code      string `json:"code"`
	RequestID string `json:"request_id"`
	ChainID   string `json:"chainid"`
	Amount    uint64 `json:"amount"`
	Committed bool   `json:"committed"` // false when the record write failed
}

// Publisher PUB socket broadcasting issuance events. Publishing is best
// effort and never fails a request.
type Publisher struct {
	sock zmq4.Socket
}

// NewPublisher bind a ZMQ PUB socket at the given address
func NewPublisher(address string) (*Publisher, error) {
	sock := zmq4.NewPub(context.Background())
	if err := sock.Listen(address); err != nil {
		return nil, err
	}
	log.Printf("Issuance event publisher listening on %s", address)
	return &Publisher{sock: sock}, nil
}

// Publish broadcast one issuance event
func (p *Publisher) Publish(record *model.IssuanceRecord, committed bool) {
	event := IssuanceEvent{
		Code:      record.Code,
		RequestID: record.RequestID,
		ChainID:   record.Request.ChainID,
		Amount:    record.Amount,
		Committed: committed,
	}
	payload, err := json.Marshal(event)
	if err != nil {
		log.Printf("Failed to encode issuance event for %s: %v", record.Code, err)
		return
	}

	msg := zmq4.NewMsgFrom([]byte(issuanceTopic), payload)
	if err := p.sock.Send(msg); err != nil {
		log.Printf("Failed to publish issuance event for %s: %v", record.Code, err)
	}
}

// Close close the PUB socket
func (p *Publisher) Close() error {
	return p.sock.Close()
}
