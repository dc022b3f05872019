package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"lotto/service"

	log "github.com/sirupsen/logrus"
)

const (
	purchaseAmountPrompt = "구입금액을 입력해 주세요."
	winningNumbersPrompt = "당첨 번호를 입력해 주세요."
	bonusNumberPrompt    = "보너스 번호를 입력해 주세요."
)

// ErrNoInput is returned when the input stream ends before a prompt is answered
var ErrNoInput = errors.New("input closed before an answer was given")

// Console runs one purchase-and-score session over line based input and output
type Console struct {
	in        *bufio.Reader
	out       io.Writer
	issuer    service.TicketIssuer
	publisher service.EventPublisher
}

// New creates a console session
func New(in io.Reader, out io.Writer, issuer service.TicketIssuer, publisher service.EventPublisher) *Console {
	return &Console{
		in:        bufio.NewReader(in),
		out:       out,
		issuer:    issuer,
		publisher: publisher,
	}
}

// Run asks for a purchase amount, prints the tickets, asks for the draw and
// prints the result. The first error ends the session.
func (c *Console) Run(ctx context.Context) error {
	amountText, err := c.ask(purchaseAmountPrompt)
	if err != nil {
		return err
	}
	amount, err := service.ParsePurchaseAmount(amountText)
	if err != nil {
		return err
	}

	customer, err := service.NewCustomer(ctx, c.issuer, c.publisher, amount)
	if err != nil {
		return err
	}
	c.println("")
	c.println(customer.TicketReport())

	c.println("")
	winningText, err := c.ask(winningNumbersPrompt)
	if err != nil {
		return err
	}
	// Reject a malformed line before asking for the bonus number
	if _, err := service.ParseWinningNumbers(winningText); err != nil {
		return err
	}

	c.println("")
	bonusText, err := c.ask(bonusNumberPrompt)
	if err != nil {
		return err
	}
	draw, err := service.ParseDraw(winningText, bonusText)
	if err != nil {
		return err
	}

	if _, err := customer.Score(ctx, draw); err != nil {
		return fmt.Errorf("failed to score tickets: %w", err)
	}

	c.println("")
	c.println(customer.ResultReport())
	return nil
}

func (c *Console) ask(prompt string) (string, error) {
	c.println(prompt)

	line, err := c.in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	if errors.Is(err, io.EOF) && line == "" {
		return "", ErrNoInput
	}

	answer := strings.TrimRight(line, "\r\n")
	log.WithFields(log.Fields{
		"prompt": prompt,
		"answer": answer,
	}).Debug("Read console input")
	return answer, nil
}

func (c *Console) println(text string) {
	fmt.Fprintln(c.out, text)
}
