package mines

// celltodo is a FIFO of cell indices threaded through a single slice. An
// index must not be added twice while the list is in use.
type celltodo struct {
	next       []int
	head, tail int
}

func newCellTodo(n int) *celltodo {
	return &celltodo{
		next: make([]int, n),
		head: -1, tail: -1,
	}
}

func (std *celltodo) add(i int) {
	if std.tail >= 0 {
		std.next[std.tail] = i
	} else {
		std.head = i
	}
	std.tail = i
	std.next[i] = -1
}

var neighbors = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}
