package world_test

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"

	gomock "github.com/golang/mock/gomock"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"worldlang/pkg/interpreter"
	"worldlang/pkg/world"
)

var _ = Describe("Grid", func() {
	var grid *world.Grid

	BeforeEach(func() {
		grid = world.NewGrid()
	})

	It("should be empty before loading", func() {
		w, h := grid.Size()
		Expect(w).To(Equal(0))
		Expect(h).To(Equal(0))
		Expect(grid.Cell(0, 0)).To(Equal(' '))
	})

	It("should size the grid by its longest row", func() {
		Expect(grid.Read(strings.NewReader("ab\r\nabcd\n\nx\n"))).To(Succeed())

		w, h := grid.Size()
		Expect(w).To(Equal(4))
		Expect(h).To(Equal(4))
	})

	It("should return blanks outside a row", func() {
		Expect(grid.Read(strings.NewReader("ab\nabcd\n"))).To(Succeed())

		Expect(grid.Cell(1, 0)).To(Equal('b'))
		Expect(grid.Cell(3, 1)).To(Equal('d'))
		Expect(grid.Cell(3, 0)).To(Equal(' '))
		Expect(grid.Cell(-1, 0)).To(Equal(' '))
		Expect(grid.Cell(0, 2)).To(Equal(' '))
	})

	It("should load a grid file", func() {
		dir, err := os.MkdirTemp("", "world")
		Expect(err).NotTo(HaveOccurred())
		DeferCleanup(os.RemoveAll, dir)

		path := filepath.Join(dir, "map.txt")
		Expect(os.WriteFile(path, []byte("#..#\n#..\n"), 0o644)).To(Succeed())

		Expect(grid.LoadGrid(path)).To(Succeed())
		w, h := grid.Size()
		Expect(w).To(Equal(4))
		Expect(h).To(Equal(2))
		Expect(grid.Cell(3, 0)).To(Equal('#'))
	})

	It("should fail on a missing file", func() {
		err := grid.LoadGrid(filepath.Join(os.TempDir(), "no-such-world.txt"))
		Expect(err).To(HaveOccurred())
		Expect(errors.Is(err, os.ErrNotExist)).To(BeTrue())
	})
})

var _ = Describe("World functions", func() {
	var (
		mockCtrl  *gomock.Controller
		mockWorld *MockWorld
		it        *interpreter.Interpreter
	)

	BeforeEach(func() {
		mockCtrl = gomock.NewController(GinkgoT())
		mockWorld = NewMockWorld(mockCtrl)
		it = interpreter.NewInterpreter(
			interpreter.WithWriter(&bytes.Buffer{}),
			world.WithWorld(mockWorld),
		)
	})

	AfterEach(func() {
		mockCtrl.Finish()
	})

	It("should load the world and report its size", func() {
		gomock.InOrder(
			mockWorld.EXPECT().LoadGrid("maps/a.txt").Return(nil),
			mockWorld.EXPECT().Size().Return(3, 2),
		)

		Expect(it.Run("loadWorld(\"maps/a.txt\")\nw, h = getWorldSize()\n")).To(BeTrue(), it.ErrorMessage())
		Expect(interpreter.Var[interpreter.Double](it, "w")).To(Equal(interpreter.Double(3)))
		Expect(interpreter.Var[interpreter.Double](it, "h")).To(Equal(interpreter.Double(2)))
	})

	It("should resolve a path held in a variable", func() {
		mockWorld.EXPECT().LoadGrid("level1").Return(nil)

		Expect(it.Run("p = \"level1\"\nloadWorld(p)\n")).To(BeTrue(), it.ErrorMessage())
	})

	It("should report a failed load", func() {
		mockWorld.EXPECT().LoadGrid("missing").Return(errors.New("no such file"))

		Expect(it.Run("loadWorld(\"missing\")\nprint(1)\n")).To(BeFalse())
		Expect(it.ErrorMessage()).To(Equal("Failed to load world missing: no such file"))
	})

	DescribeTable("should reject bad arguments without touching the world",
		func(src, msg string) {
			Expect(it.Run(src)).To(BeFalse())
			Expect(it.ErrorMessage()).To(Equal(msg))
		},
		Entry("loadWorld without a path", "loadWorld()\n", "Wrong number of arguments!"),
		Entry("loadWorld with two paths", "loadWorld(\"a\", \"b\")\n", "Wrong number of arguments!"),
		Entry("loadWorld with a number", "loadWorld(1)\n", "Runtime type error: expected string, got double"),
		Entry("getWorldSize with an argument", "w, h = getWorldSize(1)\n", "Wrong number of arguments!"),
	)

	It("should let a host shadow the world functions", func() {
		it.RegisterFunction("getWorldSize", func(i *interpreter.Interpreter) {
			i.PopArgs()
			i.PushStack(interpreter.Uint(9))
		})

		Expect(it.Run("s = getWorldSize()\n")).To(BeTrue(), it.ErrorMessage())
		Expect(interpreter.Var[interpreter.Uint](it, "s")).To(Equal(interpreter.Uint(9)))
	})
})
