// Package evergreen animates a population of decorative elements between a
// scattered cloud and an assembled Christmas tree.
//
// Evergreen is rendering-agnostic. It precomputes a frozen scattered/assembled
// pose pair for every element, advances one shared assembly progress value per
// frame, evaluates every element against that snapshot, and hands the result
// to one or more [Sink] implementations. The render and term packages provide
// ebiten and terminal sinks; [InstanceBuffer] packs frames into float32
// instance streams for GPU instancing.
//
// # Quick start
//
//	engine, err := evergreen.New(evergreen.DefaultConfig())
//	if err != nil {
//		log.Fatal(err)
//	}
//	buf := evergreen.NewInstanceBuffer(engine.Config())
//	engine.AddSink(buf)
//
//	engine.ToggleAssembly()
//	for range 120 {
//		engine.Update(1.0 / 60)
//	}
//	fmt.Println(buf.Count(evergreen.PartFoliage))
//
// # Categories
//
// Six categories share the same scattered cloud but assemble into different
// silhouettes: foliage spirals up the cone, ornaments and lights dress it,
// presents ring the floor, stockings hang on a golden-angle spiral, and wish
// tokens fill a shuffled slot pool as wishes arrive. Each category layers its
// own secondary motion on top of the shared interpolation: foliage bobs while
// scattered, lights twinkle, presents tumble until settled, stockings swing
// once assembled, and wish tokens always wobble.
//
// # Wishes
//
// [Engine.SubmitWish] records a wish newest first. Wish i occupies slot i of a
// pool shuffled once at construction; only the first [Config.WishCapacity]
// wishes are drawn. Older wishes stay in [Engine.Wishes]. Use [Engine.Inbox]
// to deliver wishes from other goroutines, for example after an asynchronous
// [Blesser] call.
//
// # Concurrency
//
// All Engine methods run on the frame goroutine. [Inbox] is the only
// goroutine-safe entry point; it drains at the start of each Step.
package evergreen
