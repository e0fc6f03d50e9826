package main

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/S0me0neR0man/certstash/internal/client"
	"github.com/S0me0neR0man/certstash/internal/registry"
	"github.com/S0me0neR0man/certstash/internal/stashdb"
)

const (
	displayCounter = 100
	retryInterval  = time.Millisecond * 100
)

type stats struct {
	created  atomic.Int64
	got      atomic.Int64
	deleted  atomic.Int64
	verified atomic.Int64
	failed   atomic.Int64
}

func (s *stats) String() string {
	return fmt.Sprintf("created=%d got=%d deleted=%d verified=%d failed=%d",
		s.created.Load(), s.got.Load(), s.deleted.Load(), s.verified.Load(), s.failed.Load())
}

func newRecord() (owner string, metadata string) {
	i := rand.Intn(100)
	return "owner" + strconv.Itoa(i), "#cert" + strconv.Itoa(i) + " sample text"
}

type Checker struct {
	toDisplay chan string

	toGet      chan stashdb.Record
	toRemove   chan stashdb.Record
	toGetAfter chan stashdb.Record

	workers int
	stats   stats
	wg      sync.WaitGroup

	client *client.GRPCClient
	sugar  *zap.SugaredLogger
}

func NewChecker(addr string, caller string, workers int, logger *zap.Logger) (*Checker, error) {
	c, err := client.NewGRPCClient(addr, caller)
	if err != nil {
		return nil, err
	}

	return &Checker{
		client:     c,
		workers:    workers,
		sugar:      logger.Sugar(),
		toDisplay:  make(chan string),
		toGet:      make(chan stashdb.Record),
		toRemove:   make(chan stashdb.Record),
		toGetAfter: make(chan stashdb.Record),
	}, nil
}

func (c *Checker) Go(ctx context.Context) {
	c.wg.Add(1 + 4*c.workers)

	go c.display(ctx)
	for i := 0; i < c.workers; i++ {
		go c.create(ctx)
		go c.get(ctx)
		go c.remove(ctx)
		go c.getAfter(ctx)
	}
}

// Wait for the pipeline to stop, the returned error reports failed checks
func (c *Checker) Wait() error {
	c.wg.Wait()
	fmt.Fprintln(os.Stdout)
	c.sugar.Infow("check done", "stats", c.stats.String())

	if err := c.client.Close(); err != nil {
		return err
	}
	if n := c.stats.failed.Load(); n > 0 {
		return fmt.Errorf("%d checks failed", n)
	}
	return nil
}

func (c *Checker) display(ctx context.Context) {
	defer c.wg.Done()
	c.sugar.Infow("display start")

	for {
		select {
		case <-ctx.Done():
			c.sugar.Infow("display done")
			return
		case s := <-c.toDisplay:
			if _, err := fmt.Fprint(os.Stdout, s); err != nil {
				c.sugar.Errorw("fprint stdout", "error", err)
			}
		}
	}
}

// send returns false if ctx is done before the receiver is ready
func send(ctx context.Context, ch chan<- stashdb.Record, rec stashdb.Record) bool {
	select {
	case ch <- rec:
		return true
	case <-ctx.Done():
		return false
	}
}

func (c *Checker) tick(ctx context.Context, count *int, s string) {
	*count++
	if *count < displayCounter {
		return
	}
	*count = 0
	select {
	case c.toDisplay <- s:
	case <-ctx.Done():
	}
}

func (c *Checker) fail(msg string, keysAndValues ...interface{}) {
	c.stats.failed.Add(1)
	c.sugar.Errorw(msg, keysAndValues...)
}

func (c *Checker) create(ctx context.Context) {
	defer c.wg.Done()

	count := 0
	c.sugar.Infow("create start")

	for {
		if ctx.Err() != nil {
			c.sugar.Infow("create done")
			return
		}

		owner, metadata := newRecord()
		rec, err := c.client.Create(ctx, owner, metadata)
		if err != nil {
			if ctx.Err() == nil {
				c.fail("create", "error", err)
				time.Sleep(retryInterval)
			}
			continue
		}
		if rec.Owner != owner || rec.Metadata != metadata {
			c.fail("create returned other payload", "rec", rec, "owner", owner, "metadata", metadata)
		}
		c.stats.created.Add(1)
		c.sugar.Debugw("create ok", "rec", rec)

		c.tick(ctx, &count, "C")
		if !send(ctx, c.toGet, rec) {
			return
		}
	}
}

func (c *Checker) get(ctx context.Context) {
	defer c.wg.Done()

	c.sugar.Infow("get start")
	count := 0

	for {
		select {
		case <-ctx.Done():
			c.sugar.Infow("get done")
			return

		case rec := <-c.toGet:
			got, err := c.client.Get(ctx, rec.ID)
			if err != nil {
				if ctx.Err() == nil {
					c.fail("get", "id", rec.ID, "error", err)
				}
				continue
			}
			if got != rec {
				c.fail("not equal", "before", rec, "after", got)
			}
			c.stats.got.Add(1)

			c.tick(ctx, &count, "G")
			if !send(ctx, c.toRemove, rec) {
				return
			}
		}
	}
}

func (c *Checker) remove(ctx context.Context) {
	defer c.wg.Done()

	c.sugar.Infow("remove start")
	count := 0

	for {
		select {
		case <-ctx.Done():
			c.sugar.Infow("remove done")
			return
		case rec := <-c.toRemove:
			removed, err := c.client.Delete(ctx, rec.ID)
			if err != nil {
				if ctx.Err() == nil {
					c.fail("remove", "id", rec.ID, "error", err)
				}
				continue
			}
			if removed != rec {
				c.fail("removed other record", "before", rec, "removed", removed)
			}
			c.stats.deleted.Add(1)

			c.tick(ctx, &count, "R")
			if !send(ctx, c.toGetAfter, rec) {
				return
			}
		}
	}
}

func (c *Checker) getAfter(ctx context.Context) {
	defer c.wg.Done()

	c.sugar.Infow("getAfter start")
	count := 0

	for {
		select {
		case <-ctx.Done():
			c.sugar.Infow("getAfter done")
			return

		case rec := <-c.toGetAfter:
			_, err := c.client.Get(ctx, rec.ID)
			if ctx.Err() != nil {
				continue
			}
			if !errors.Is(err, registry.ErrNotFound) {
				c.fail("getAfter want not found", "id", rec.ID, "error", err)
				continue
			}
			if want := fmt.Sprintf("An NFT with id=%d not found", rec.ID); err.Error() != want {
				c.fail("getAfter message", "got", err.Error(), "want", want)
				continue
			}
			c.stats.verified.Add(1)
			c.tick(ctx, &count, "A")
		}
	}
}
