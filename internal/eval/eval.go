// Package eval computes classification metrics for ordinal label
// predictions.
package eval

// ClassMetrics holds the per-class precision, recall, F1 and support for a
// single class within one label dimension.
type ClassMetrics struct {
	Class     int
	Precision float64
	Recall    float64
	F1        float64
	Support   int
}

// Report aggregates the evaluation of one label dimension.
type Report struct {
	Accuracy float64
	Classes  []ClassMetrics
}

// Evaluate compares predictions against ground truth over numClasses ordinal
// classes (0..numClasses-1). yTrue and yPred must be the same length. The
// engine makes no assumption about how the predictions were produced.
func Evaluate(yTrue, yPred []int, numClasses int) Report {
	rep := Report{
		Classes: make([]ClassMetrics, 0, numClasses),
	}

	if len(yTrue) > 0 {
		matches := 0
		for i := range yTrue {
			if yTrue[i] == yPred[i] {
				matches++
			}
		}
		rep.Accuracy = float64(matches) / float64(len(yTrue))
	}

	for class := 0; class < numClasses; class++ {
		rep.Classes = append(rep.Classes, perClass(yTrue, yPred, class))
	}
	return rep
}

// perClass counts true positives, false positives and false negatives for
// one class and derives precision, recall and F1 with zero-guards on every
// denominator.
func perClass(yTrue, yPred []int, class int) ClassMetrics {
	var tp, fp, fn, support int
	for i := range yTrue {
		truth := yTrue[i] == class
		pred := yPred[i] == class
		if truth {
			support++
		}
		switch {
		case truth && pred:
			tp++
		case !truth && pred:
			fp++
		case truth && !pred:
			fn++
		}
	}

	m := ClassMetrics{Class: class, Support: support}
	if tp+fp > 0 {
		m.Precision = float64(tp) / float64(tp+fp)
	}
	if tp+fn > 0 {
		m.Recall = float64(tp) / float64(tp+fn)
	}
	if m.Precision+m.Recall > 0 {
		m.F1 = 2 * m.Precision * m.Recall / (m.Precision + m.Recall)
	}
	return m
}
