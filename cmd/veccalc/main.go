package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"g3vec/internal/mathutil"
)

const usage = `Usage: veccalc [-f32] [-fmt verb] <op> <args>

Vectors are written x,y,z. Ops:
  length v          normalize v        neg v
  dot a b           cross a b          unitcross a b
  angle a b         add a b            sub a b
  mul a b           div a b            lerp a b t
  scale v f         narrow v
`

var errUsage = errors.New("bad arguments")

func main() {
	f32 := flag.Bool("f32", false, "Use single precision")
	verb := flag.String("fmt", "", "fmt verb applied to each component (default: %.8f)")
	flag.Usage = func() { fmt.Fprint(os.Stderr, usage) }
	flag.Parse()

	args := flag.Args()
	if len(args) == 0 {
		flag.Usage()
		os.Exit(2)
	}

	var out string
	var err error
	if *f32 {
		out, err = eval[float32](args[0], args[1:], *verb)
	} else {
		out, err = eval[float64](args[0], args[1:], *verb)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		if errors.Is(err, errUsage) {
			flag.Usage()
		}
		os.Exit(1)
	}
	fmt.Println(out)
}

func eval[T mathutil.Float](op string, args []string, verb string) (string, error) {
	arity := map[string]int{
		"length": 1, "normalize": 1, "neg": 1, "narrow": 1,
		"dot": 2, "cross": 2, "unitcross": 2, "angle": 2,
		"add": 2, "sub": 2, "mul": 2, "div": 2,
		"lerp": 3, "scale": 2,
	}
	n, ok := arity[op]
	if !ok {
		return "", fmt.Errorf("unknown op %q: %w", op, errUsage)
	}
	if len(args) != n {
		return "", fmt.Errorf("%s takes %d arguments, got %d: %w", op, n, len(args), errUsage)
	}

	show := func(v mathutil.Vector3[T]) string {
		if verb == "" {
			return v.String()
		}
		return v.FormatWith(verb)
	}

	a, err := parseVector[T](args[0])
	if err != nil {
		return "", err
	}

	switch op {
	case "length":
		return fmt.Sprint(a.Length()), nil
	case "normalize":
		l := a.Normalize()
		return fmt.Sprintf("%s (length %v)", show(a), l), nil
	case "neg":
		return show(a.Neg()), nil
	case "narrow":
		d := widen(a)
		f := mathutil.Narrow(d)
		return fmt.Sprintf("%s (error %s)", f.FormatWith("%g"), mathutil.Widen(f).Minus(d).FormatWith("%g")), nil
	case "scale":
		f, err := parseScalar[T](args[1])
		if err != nil {
			return "", err
		}
		return show(a.Scale(f)), nil
	}

	b, err := parseVector[T](args[1])
	if err != nil {
		return "", err
	}

	switch op {
	case "dot":
		return fmt.Sprint(a.Dot(b)), nil
	case "cross":
		return show(a.Cross(b)), nil
	case "unitcross":
		return show(a.UnitCross(b)), nil
	case "angle":
		// inputs are normalized here; AngleD itself does not
		na, nb := a.Normalized(), b.Normalized()
		return fmt.Sprintf("%v° (%v rad)", na.AngleD(nb), na.AngleR(nb)), nil
	case "add":
		return show(a.Plus(b)), nil
	case "sub":
		return show(a.Minus(b)), nil
	case "mul":
		return show(a.MulEach(b)), nil
	case "div":
		return show(a.DivEach(b)), nil
	}

	// lerp
	t, err := parseScalar[T](args[2])
	if err != nil {
		return "", err
	}
	return show(mathutil.Lerp(a, b, t)), nil
}

func parseVector[T mathutil.Float](s string) (mathutil.Vector3[T], error) {
	parts := strings.Split(s, ",")
	vals := make([]T, 0, len(parts))
	for _, p := range parts {
		f, err := parseScalar[T](strings.TrimSpace(p))
		if err != nil {
			return mathutil.Vector3[T]{}, err
		}
		vals = append(vals, f)
	}
	if len(vals) > 3 {
		return mathutil.Vector3[T]{}, fmt.Errorf("vector %q has %d components: %w", s, len(vals), errUsage)
	}
	v, err := mathutil.FromSlice(vals)
	if err != nil {
		return v, fmt.Errorf("vector %q: %w", s, err)
	}
	return v, nil
}

func parseScalar[T mathutil.Float](s string) (T, error) {
	bits := 64
	var zero T
	if _, ok := any(zero).(float32); ok {
		bits = 32
	}
	f, err := strconv.ParseFloat(s, bits)
	if err != nil {
		return 0, fmt.Errorf("parse %q: %w", s, err)
	}
	return T(f), nil
}

func widen[T mathutil.Float](v mathutil.Vector3[T]) mathutil.Vector3d {
	return mathutil.Vector3d{float64(v[0]), float64(v[1]), float64(v[2])}
}
