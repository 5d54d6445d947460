package sigslot

import "fmt"

func ExampleSignal1() {
	clicked := New1[string]()

	clicked.Connect(func(id string) {
		fmt.Println("clicked:", id)
	})
	clicked.Connect(func(id string) {
		fmt.Println("first:", id)
	}, WithPriority(10))

	clicked.Emit("ok-button")

	// Output:
	// first: ok-button
	// clicked: ok-button
}

func ExampleOnce() {
	ready := New()

	ready.Connect(func() { fmt.Println("warm up") }, Once())
	ready.Connect(func() { fmt.Println("serve") })

	ready.Emit()
	ready.Emit()

	// Output:
	// warm up
	// serve
	// serve
}

func ExampleSignal2_Connect1() {
	progress := New2[int, string]()

	// The slot only cares about the leading argument.
	progress.Connect1(func(percent int) {
		fmt.Printf("%d%%\n", percent)
	})

	progress.Emit(50, "halfway there")
	progress.Emit(100, "done")

	// Output:
	// 50%
	// 100%
}
