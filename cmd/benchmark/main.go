package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"runtime/pprof"
	"sync"
	"sync/atomic"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/jamiealquiza/tachymeter"
	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/signalkit/sigslot"
)

var (
	profile = flag.Bool("profile", false, "write a CPU profile to default.pgo")
	iters   = flag.Int("iters", 200_000, "emit iterations per scenario")
)

func main() {
	flag.Parse()

	if *profile {
		f, err := os.Create("default.pgo")
		if err != nil {
			log.Fatal(err)
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			log.Fatal(err)
		}
		defer pprof.StopCPUProfile()
	}

	log.Printf("warming up")
	benchEmit(false)

	benchEmit(true)
	benchManySlots(true)
	benchConcurrentEmits(true)
	benchConnectDisconnect(true)
}

func sample(iterations int, fn func()) *tachymeter.Tachymeter {
	size := iterations
	if size > 10_000 {
		size = 10_000
	}
	tach := tachymeter.New(&tachymeter.Config{Size: size})
	for i := 0; i < iterations; i++ {
		start := time.Now()
		fn()
		tach.AddTime(time.Since(start))
	}
	return tach
}

func row(tbl table.Writer, name string, iterations int, tach *tachymeter.Tachymeter) {
	m := tach.Calc()
	tbl.AppendRow(table.Row{
		name,
		humanize.Comma(int64(iterations)),
		m.Time.Avg, m.Time.Min, m.Time.P75, m.Time.P99, m.Time.Max,
	})
}

// benchEmit covers the per-emit baseline: an empty signal, a single
// slot, a single slot taking fewer arguments than the signal carries,
// and a single owner-tracked slot.
func benchEmit(render bool) {
	tbl := table.NewWriter()
	tbl.SetTitle("Single Slot Emit")
	tbl.SetOutputMirror(os.Stdout)
	tbl.AppendHeader(table.Row{"benchmark", "emits", "avg", "min", "p75", "p99", "max"})

	var sink atomic.Int64

	empty := sigslot.New()
	row(tbl, "empty", *iters, sample(*iters, empty.Emit))

	single := sigslot.New1[int]()
	single.Connect(func(v int) { sink.Store(int64(v)) })
	i := 0
	row(tbl, "single slot", *iters, sample(*iters, func() {
		single.Emit(i)
		i++
	}))

	partial := sigslot.New2[int, string]()
	partial.Connect1(func(v int) { sink.Store(int64(v)) })
	i = 0
	row(tbl, "partial args", *iters, sample(*iters, func() {
		partial.Emit(i, "payload")
		i++
	}))

	tracked := sigslot.New1[int]()
	owner := sigslot.NewOwner()
	tracked.Connect(func(v int) { sink.Store(int64(v)) }, sigslot.WithLifetime(owner))
	i = 0
	row(tbl, "owner tracked", *iters, sample(*iters, func() {
		tracked.Emit(i)
		i++
	}))

	if render {
		tbl.Render()
	}
}

// benchManySlots scales the slot count per signal, checking the
// delivered count on the way out.
func benchManySlots(render bool) {
	tbl := table.NewWriter()
	tbl.SetTitle("Many Slots")
	tbl.SetOutputMirror(os.Stdout)
	tbl.AppendHeader(table.Row{"slots", "emits", "avg", "min", "p75", "p99", "max"})

	for _, slots := range []int{1, 10, 100, 500} {
		iterations := *iters
		if slots >= 100 {
			iterations = *iters / 10
		}
		if slots >= 500 {
			iterations = *iters / 50
		}

		sig := sigslot.New()
		var counter atomic.Int64
		for i := 0; i < slots; i++ {
			sig.Connect(func() { counter.Add(1) })
		}

		tach := sample(iterations, sig.Emit)
		if got, want := counter.Load(), int64(slots)*int64(iterations); got != want {
			log.Fatalf("missed invocations: got %d, want %d", got, want)
		}
		row(tbl, fmt.Sprintf("%d slots", slots), iterations, tach)
	}

	if render {
		tbl.Render()
	}
}

// benchConcurrentEmits fires one signal from several goroutines at
// once and verifies nothing is lost or duplicated.
func benchConcurrentEmits(render bool) {
	const slots = 10
	perG := *iters / 20
	gs := runtime.GOMAXPROCS(0)
	if gs > 4 {
		gs = 4
	}

	sig := sigslot.New()
	var counter atomic.Int64
	for i := 0; i < slots; i++ {
		sig.Connect(func() { counter.Add(1) })
	}

	start := time.Now()
	var wg sync.WaitGroup
	for t := 0; t < gs; t++ {
		wg.Go(func() {
			for i := 0; i < perG; i++ {
				sig.Emit()
			}
		})
	}
	wg.Wait()
	elapsed := time.Since(start)

	want := int64(gs) * int64(perG) * slots
	if got := counter.Load(); got != want {
		log.Fatalf("missed invocations: got %d, want %d", got, want)
	}

	if render {
		emits := int64(gs) * int64(perG)
		log.Printf("concurrent: %d goroutines x %s emits with %d slots in %v (%s emits/s)",
			gs, humanize.Comma(int64(perG)), slots, elapsed,
			humanize.Comma(int64(float64(emits)/elapsed.Seconds())))
	}
}

// benchConnectDisconnect measures churn: short-lived registrations that
// connect and disconnect in a tight loop.
func benchConnectDisconnect(render bool) {
	tbl := table.NewWriter()
	tbl.SetTitle("Connect/Disconnect Churn")
	tbl.SetOutputMirror(os.Stdout)
	tbl.AppendHeader(table.Row{"benchmark", "ops", "avg", "min", "p75", "p99", "max"})

	sig := sigslot.New()
	iterations := *iters / 10
	tach := sample(iterations, func() {
		conn := sig.Connect(func() {})
		conn.Disconnect()
	})
	if !sig.Empty() {
		log.Fatalf("signal not empty after churn: %d slots", sig.Len())
	}
	row(tbl, "connect+disconnect", iterations, tach)

	if render {
		tbl.Render()
	}
}
