package config

import (
	"fmt"
	"io/ioutil"
	"os"
	"path"
	"reflect"
	"sync"

	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

var tdchHomeDir string

// Main holds default values for CLI flags.
var Main *File

func init() {
	Main = NewConfigFileWithDir(mustGetConfigHomeDir(), MainFileFullName)
}

const (
	MainDir            = ".tdch"
	MainFileNamePrefix = "config"
	MainFileNameExt    = "yaml"
	MainFileFullName   = MainFileNamePrefix + "." + MainFileNameExt
)

// FileNotFoundError denotes failing to find configuration file.
type FileNotFoundError struct {
	name string
}

// Error returns the formatted configuration error.
func (f FileNotFoundError) Error() string {
	return fmt.Sprintf("config file %q not found", f.name)
}

type KeyNotFoundError struct {
	configFile string
	key        string
}

func (k KeyNotFoundError) Error() string {
	return fmt.Sprintf("key %q not found in config file %q", k.key, k.configFile)
}

// File is a YAML file of key-value pairs that is loaded on first use.
type File struct {
	Dirname      string
	FileName     string
	FullPath     string
	data         map[string]interface{}
	dataIsLoaded bool
	mu           sync.Mutex
}

func NewConfigFileWithDir(dirName string, filename string) *File {
	return &File{
		Dirname:  dirName,
		FileName: filename,
		FullPath: path.Join(dirName, filename),
		data:     make(map[string]interface{}),
	}
}

// Get will fetch the key from the config File into variable, out, which must be a pointer.
// A KeyNotFoundError is returned if the key does not exist.
func (c *File) Get(key string, out interface{}) error {
	if reflect.ValueOf(out).Kind() != reflect.Ptr {
		return errors.New("out must be a pointer")
	}
	if err := c.loadDataIfRequired(); err != nil {
		return err
	}
	c.mu.Lock()
	d, ok := c.data[key]
	c.mu.Unlock()
	if !ok {
		return KeyNotFoundError{c.FullPath, key}
	}
	cfg := &mapstructure.DecoderConfig{WeaklyTypedInput: true, Result: out}
	dec, err := mapstructure.NewDecoder(cfg)
	if err != nil {
		return err
	}
	return errors.Wrapf(dec.Decode(d), "error decoding key %v in config file %v", key, c.FullPath)
}

// Set saves the key and value and writes the whole file.
func (c *File) Set(key string, val interface{}) error {
	if err := c.loadDataIfRequired(); err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = val
	return c.save()
}

// Delete removes the key and writes the whole file.
func (c *File) Delete(key string) error {
	if err := c.loadDataIfRequired(); err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, keyExists := c.data[key]; !keyExists {
		return KeyNotFoundError{c.FullPath, key}
	}
	delete(c.data, key)
	return c.save()
}

func (c *File) GetAllKeys() ([]string, error) {
	if err := c.loadDataIfRequired(); err != nil {
		return nil, err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	retval := make([]string, 0, len(c.data))
	for k := range c.data {
		retval = append(retval, k)
	}
	return retval, nil
}

// loadDataIfRequired loads the file once. A missing file is treated as empty.
func (c *File) loadDataIfRequired() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.dataIsLoaded {
		return nil
	}
	b, err := ioutil.ReadFile(c.FullPath)
	if os.IsNotExist(err) { // if there's no file yet...
		c.dataIsLoaded = true
		return nil
	} else if err != nil {
		return errors.Wrapf(err, "error reading config file %v", c.FullPath)
	}
	if err = yaml.Unmarshal(b, &c.data); err != nil {
		return errors.Wrapf(err, "error parsing config file %v", c.FullPath)
	}
	c.dataIsLoaded = true
	return nil
}

// save must be called with c.mu held.
func (c *File) save() error {
	b, err := yaml.Marshal(c.data)
	if err != nil {
		return errors.Wrapf(err, "error marshalling data for config file %v", c.FullPath)
	}
	if err = makeDir(c.Dirname); err != nil {
		return err
	}
	return errors.Wrapf(ioutil.WriteFile(c.FullPath, b, 0600), "error writing config file %v", c.FullPath)
}

// IsKeyNotFound returns true if err is a KeyNotFoundError.
func IsKeyNotFound(err error) bool {
	return errors.As(err, &KeyNotFoundError{})
}
