// Copyright 2026 The Cragdb Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package analyzer

import (
	"context"

	"github.com/cragdb/sqlanalyzer/sql/expression"
	"github.com/cragdb/sqlanalyzer/sql/plan"
	"github.com/opentracing/opentracing-go"
	"github.com/sirupsen/logrus"
)

// Config holds two settings carried on a Context: the floor below which a
// dictionary CompParam is treated as transient (spec §3's TransientDictID
// is the usual value), and whether constant subexpressions are to be
// eagerly folded during rewriting. No pass in this package reads either
// field: transient ids are always judged by types.IsTransient, and
// Constant.AddCast always folds.
type Config struct {
	TransientDictFloor int32
	FoldConstants      bool
}

// DefaultConfig matches spec.md's TransientDictID convention and folds
// constants.
func DefaultConfig() Config {
	return Config{TransientDictFloor: -1, FoldConstants: true}
}

// Context bundles the per-call collaborators every analyzer pass needs: a
// structured logger (matching the teacher's BaseSession.GetLogger()/
// SetLogger() convention) and the Config above. It is deliberately not
// named after any single pass — its traced GroupPredicates,
// NormalizeSimplePredicate and RewriteWithTargetlist methods share it, so a
// caller running several passes over one Query builds it once.
// RewriteWithChildTargetlist and RewriteAggToVar have no traced method.
type Context struct {
	Logger *logrus.Entry
	Config Config
}

// NewContext builds a Context with a logger tagged for the analyzer
// subsystem, the way the teacher tags its per-rule loggers with the rule
// name via logrus fields.
func NewContext(cfg Config) *Context {
	return &Context{
		Logger: logrus.WithField("subsystem", "analyzer"),
		Config: cfg,
	}
}

// traced wraps fn in an opentracing span named op, logging entry/exit at
// debug level the way the teacher's analyzer rules log their own
// before/after state. It is the shared wrapper every exported pass below
// uses so a caller gets the same span-plus-log shape regardless of which
// pass it calls.
func (c *Context) traced(ctx context.Context, op string, fn func()) {
	span, _ := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()
	c.Logger.WithField("op", op).Debug("analyzer pass start")
	fn()
	c.Logger.WithField("op", op).Debug("analyzer pass done")
}

// GroupPredicates is the traced entry point for the pure GroupPredicates
// function: same classification, wrapped in a span and before/after debug
// logs (spec §4.8's ambient tracing requirement).
func (c *Context) GroupPredicates(ctx context.Context, e expression.Expr) (scan, join, constant []expression.Expr) {
	c.traced(ctx, "group_predicates", func() {
		scan, join, constant = GroupPredicates(e)
		c.Logger.WithField("scan", len(scan)).WithField("join", len(join)).
			WithField("const", len(constant)).Debug("classified predicate")
	})
	return scan, join, constant
}

// NormalizeSimplePredicate is the traced entry point for the pure
// NormalizeSimplePredicate function.
func (c *Context) NormalizeSimplePredicate(ctx context.Context, e expression.Expr) (expression.Expr, int32) {
	var out expression.Expr
	var rteIdx int32
	c.traced(ctx, "normalize_simple_predicate", func() {
		out, rteIdx = NormalizeSimplePredicate(e)
	})
	return out, rteIdx
}

// RewriteWithTargetlist is the traced entry point for the pure
// RewriteWithTargetlist function.
func (c *Context) RewriteWithTargetlist(ctx context.Context, e expression.Expr, tlist []*plan.TargetEntry) (expression.Expr, error) {
	var out expression.Expr
	var err error
	c.traced(ctx, "rewrite_with_targetlist", func() {
		out, err = RewriteWithTargetlist(e, tlist)
		if err != nil {
			c.Logger.WithError(err).Warn("rewrite_with_targetlist failed")
		}
	})
	return out, err
}
