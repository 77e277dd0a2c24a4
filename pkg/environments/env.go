// Package environments assembles the dependency injection container of a binary.
package environments

import (
	"context"
	"os"

	"github.com/goava/di"
	"github.com/golang/glog"
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"github.com/spf13/pflag"
)

// Env holds the dependency injection container of the running environment.
type Env struct {
	Name      string
	Container *di.Container
	loader    EnvLoader
}

// GetEnvironmentStrFromEnv returns the name of the environment selected by NEWSLETTER_ENV.
func GetEnvironmentStrFromEnv() string {
	envStr, specified := os.LookupEnv(EnvironmentStringKey)
	if !specified || envStr == "" {
		envStr = string(EnvironmentDefault)
	}
	return envStr
}

// New creates the container. loader may be nil.
func New(name string, loader EnvLoader, options ...di.Option) (*Env, error) {
	env := &Env{
		Name:   name,
		loader: loader,
	}

	container, err := di.New(
		di.Provide(func() *Env { return env }),
		di.Provide(func() EnvName { return EnvName(name) }),
		di.Options(options...),
	)
	if err != nil {
		return nil, errors.Wrap(err, "creating dependency container")
	}
	env.Container = container
	return env, nil
}

// AddFlags registers the flags of every ConfigModule and applies the environment defaults to them.
func (env *Env) AddFlags(flags *pflag.FlagSet) error {
	var modules []ConfigModule
	if err := env.resolveAll(&modules); err != nil {
		return err
	}
	for _, m := range modules {
		m.AddFlags(flags)
	}
	if env.loader == nil {
		return nil
	}
	return applyDefaults(flags, env.loader.Defaults())
}

func applyDefaults(flags *pflag.FlagSet, defaults map[string]string) error {
	for name, value := range defaults {
		f := flags.Lookup(name)
		if f == nil {
			glog.Warningf("Environment default for unknown flag %q ignored", name)
			continue
		}
		if f.Changed {
			continue
		}
		if err := f.Value.Set(value); err != nil {
			return errors.Wrapf(err, "setting default of flag %q", name)
		}
		f.DefValue = value
	}
	return nil
}

// CreateServices reads the configuration of every ConfigModule and runs the ServiceValidators.
// Errors of all modules are reported together.
func (env *Env) CreateServices() error {
	if env.loader != nil {
		if err := env.loader.ModifyConfiguration(env); err != nil {
			return errors.Wrap(err, "modifying configuration")
		}
	}

	var modules []ConfigModule
	if err := env.resolveAll(&modules); err != nil {
		return err
	}

	var result *multierror.Error
	for _, m := range modules {
		if err := m.ReadFiles(); err != nil {
			result = multierror.Append(result, errors.Wrapf(err, "reading configuration of %T", m))
		}
	}
	if err := result.ErrorOrNil(); err != nil {
		return err
	}

	var validators []ServiceValidator
	if err := env.resolveAll(&validators); err != nil {
		return err
	}
	for _, v := range validators {
		if err := v.Validate(); err != nil {
			result = multierror.Append(result, err)
		}
	}
	return result.ErrorOrNil()
}

// Run starts every BootService and blocks until ctx is done, then stops them in reverse order.
func (env *Env) Run(ctx context.Context) {
	var services []BootService
	env.MustResolve(&services)
	for _, s := range services {
		glog.Infof("Starting %T", s)
		s.Start()
	}

	<-ctx.Done()

	for i := len(services) - 1; i >= 0; i-- {
		glog.Infof("Stopping %T", services[i])
		services[i].Stop()
	}
}

// Cleanup invokes the cleanup functions registered by constructors.
func (env *Env) Cleanup() {
	env.Container.Cleanup()
}

// MustInvoke ...
func (env *Env) MustInvoke(invocation di.Invocation, options ...di.InvokeOption) {
	if err := env.Container.Invoke(invocation, options...); err != nil {
		glog.Fatalf("Invoke failed: %v", err)
	}
}

// MustResolve ...
func (env *Env) MustResolve(ptr di.Pointer, options ...di.ResolveOption) {
	if err := env.Container.Resolve(ptr, options...); err != nil {
		glog.Fatalf("Resolve failed: %v", err)
	}
}

// Resolve ...
func (env *Env) Resolve(ptr di.Pointer, options ...di.ResolveOption) error {
	if err := env.Container.Resolve(ptr, options...); err != nil {
		return errors.Wrapf(err, "resolving %T", ptr)
	}
	return nil
}

func (env *Env) resolveAll(ptr di.Pointer) error {
	return env.Resolve(ptr)
}
